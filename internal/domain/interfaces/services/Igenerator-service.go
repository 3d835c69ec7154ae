package Iservices

// IGeneratorService produces the random character content. It is a pure
// producer: nothing in the dialog core feeds back into it.
type IGeneratorService interface {
	GenerateHeading() string
	GenerateCharacter() string
	GenerateResponse() string
}
