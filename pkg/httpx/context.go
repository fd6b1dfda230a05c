package httpx

type ctxKey string

const (
	// CtxKeyMemberID holds the authenticated team member's row ID.
	CtxKeyMemberID ctxKey = "member_id"
	// CtxKeyMember holds the full membership record for handlers that
	// need the acting member's email/role (e.g. activity logging).
	CtxKeyMember ctxKey = "member"
)
