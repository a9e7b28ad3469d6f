package interfaces

// ITokenIssuer issues signed bearer credentials for an authenticated
// identity.
type ITokenIssuer interface {
	Issue(subjectID, email, role string) (string, error)
}
