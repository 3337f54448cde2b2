package runtime

// Well-known FQNs (§6): the contract between the Language standard
// library and the host. Natives and innerValue discriminants key off
// these exact strings.
const (
	FQNList       = "wollok.lang.List"
	FQNSet        = "wollok.lang.Set"
	FQNString     = "wollok.lang.String"
	FQNNumber     = "wollok.lang.Number"
	FQNBoolean    = "wollok.lang.Boolean"
	FQNGameMirror = "wollok.gameMirror.gameMirror"
	FQNIO         = "wollok.io.io"
	FQNGame       = "wollok.game.game"
	FQNSound      = "wollok.game.Sound"

	// Not part of the §6 table but needed to give the Null/Void sentinels
	// a moduleFQN; they have no Language-visible class of their own.
	fqnNull = "wollok.lang.Null"
	fqnVoid = "wollok.lang.Void"
)
