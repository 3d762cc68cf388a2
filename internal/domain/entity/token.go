package entity

// TokenKind distinguishes the two session token flavours.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// String returns the claim value used for the kind.
func (k TokenKind) String() string {
	return string(k)
}
