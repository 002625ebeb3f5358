package cripta

import (
	"crypto/rand"
	"encoding/binary"
)

// loadWord читает 32-битное слово из первых четырёх байт b
func loadWord(b []uint8, order binary.ByteOrder) uint32 {
	return order.Uint32(b)
}

// storeWord записывает слово w в первые четыре байта b
func storeWord(b []uint8, w uint32, order binary.ByteOrder) {
	order.PutUint32(b, w)
}

// loadWords разбирает 16-байтный блок на четыре слова
func loadWords(block []uint8, order binary.ByteOrder) Quad {
	var q Quad
	for i := range q {
		q[i] = loadWord(block[i*4:], order)
	}
	return q
}

// storeWords собирает четыре слова обратно в 16-байтный блок
func storeWords(dst []uint8, q Quad, order binary.ByteOrder) {
	for i, w := range q {
		storeWord(dst[i*4:], w, order)
	}
}

func xorQuad(a, b Quad) Quad {
	return Quad{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// GenerateRandomBytes заполняет data криптографически стойкими случайными байтами
func GenerateRandomBytes(data []byte) (int, error) {
	return rand.Read(data)
}
