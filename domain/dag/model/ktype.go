package model

// KType defines the type of the GHOSTDAG k-parameter: the maximum anticone
// size a block may have and still be classified Blue.
type KType byte
