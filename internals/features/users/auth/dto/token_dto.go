package dto

// IssueTokenRequest is the part of POST /jwt the server checks. The rest of
// the body is signed into the token unchanged.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type IssueTokenResponse struct {
	Token string `json:"token"`
}
