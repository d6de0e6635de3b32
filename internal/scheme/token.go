package scheme

// Mode selects which constraint table a scheme is derived against.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Valid reports whether the mode is one of the two supported values.
func (m Mode) Valid() bool {
	return m == ModeDark || m == ModeLight
}

// Token names a UI role that must be bound to exactly one palette color.
type Token string

const (
	TokenBgApp        Token = "bgApp"
	TokenBgSurface    Token = "bgSurface"
	TokenBgElevated   Token = "bgElevated"
	TokenTextPrimary  Token = "textPrimary"
	TokenTextMuted    Token = "textMuted"
	TokenBorderSubtle Token = "borderSubtle"
	TokenBorderStrong Token = "borderStrong"
	TokenAccentSolid  Token = "accentSolid"
	TokenAccentSoft   Token = "accentSoft"

	// TokenDestructive is supplied by the destructive picker, not resolved
	// by the enumerator.
	TokenDestructive Token = "destructive"
)

// TokenOrder fixes the resolution order of the enumerated tokens. A token's
// constraint may only reference tokens earlier in this list.
var TokenOrder = []Token{
	TokenBgApp,
	TokenBgSurface,
	TokenBgElevated,
	TokenTextPrimary,
	TokenTextMuted,
	TokenBorderSubtle,
	TokenBorderStrong,
	TokenAccentSolid,
	TokenAccentSoft,
}
