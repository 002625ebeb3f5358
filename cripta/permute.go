package cripta

// getBit возвращает бит pos (0..127) состояния
func getBit(q Quad, pos int) uint32 {
	return (q[pos/32] >> uint(pos%32)) & 1
}

// setBit выставляет бит pos (0..127) состояния в единицу
func setBit(q *Quad, pos int) {
	q[pos/32] |= 1 << uint(pos%32)
}

// PermuteBits переносит каждый бит i входа на позицию rule[i] в обнулённом выходе
func PermuteBits(value Quad, rule *[BlockBits]uint8) Quad {
	var result Quad
	for i := 0; i < BlockBits; i++ {
		if getBit(value, i) != 0 {
			setBit(&result, int(rule[i]))
		}
	}
	return result
}

// permute - линейный слой раунда
func permute(state Quad) Quad {
	return PermuteBits(state, &bitPermutation)
}

// inversePermute - обратный линейный слой
func inversePermute(state Quad) Quad {
	return PermuteBits(state, &inverseBitPermutation)
}
