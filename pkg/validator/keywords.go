package validator

// reservedWords is the exact set from the Language's reserved-word table
// (§6), consulted by nameIsNotKeyword. It mixes punctuation tokens and
// word keywords because that's what the grammar's reserved set contains;
// we don't second-guess it here.
var reservedWords = map[string]bool{
	".": true, ",": true, "(": true, ")": true, ";": true, "_": true,
	"{": true, "}": true, ":": true, "+": true, "=": true, "=>": true,

	"import": true, "package": true, "program": true, "test": true,
	"mixed with": true,

	"class": true, "inherits": true, "object": true, "mixin": true,

	"var": true, "const": true, "override": true, "method": true,
	"native": true, "constructor": true,

	"self": true, "super": true, "new": true, "if": true, "else": true,
	"return": true, "throw": true, "try": true, "then always": true,
	"catch": true,

	"null": true, "false": true, "true": true,
}

func isReservedWord(name string) bool {
	return reservedWords[name]
}
