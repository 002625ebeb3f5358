package cripta

// SPNRoundFunction реализует один раунд сети и его обращение.
// Последний раунд выполняется без линейного слоя.
type SPNRoundFunction struct{}

func NewSPNRoundFunction() *SPNRoundFunction {
	return &SPNRoundFunction{}
}

// Apply выполняет раунд round: подстановка, ключ, перестановка
func (rf *SPNRoundFunction) Apply(state Quad, round int, roundKey Quad) Quad {
	state = substitute(state, round%8)
	state = xorQuad(state, roundKey)
	if round < Rounds-1 {
		state = permute(state)
	}
	return state
}

// Invert отменяет Apply с теми же round и roundKey
func (rf *SPNRoundFunction) Invert(state Quad, round int, roundKey Quad) Quad {
	if round < Rounds-1 {
		state = inversePermute(state)
	}
	state = xorQuad(state, roundKey)
	return inverseSubstitute(state, round%8)
}

// substitute применяет S-блок boxIndex к каждому полубайту каждого слова
func substitute(state Quad, boxIndex int) Quad {
	return substituteWith(state, &sBox[boxIndex])
}

// inverseSubstitute - обратная подстановка
func inverseSubstitute(state Quad, boxIndex int) Quad {
	return substituteWith(state, &invSBox[boxIndex])
}

func substituteWith(state Quad, box *[16]uint8) Quad {
	var result Quad
	for i, word := range state {
		var out uint32
		// Полубайты от младшего к старшему
		for j := 0; j < 8; j++ {
			nibble := (word >> uint(j*4)) & 0xF
			out |= uint32(box[nibble]) << uint(j*4)
		}
		result[i] = out
	}
	return result
}
