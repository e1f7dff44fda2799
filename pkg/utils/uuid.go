package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// IDLength é o tamanho dos identificadores de sessão
const IDLength = 21

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, IDLength)
}
