package swagger

import "github.com/h3kker/rebar/framer"

// AuthenticatorConverter converts one authenticator into the key and
// security scheme emitted into the securityDefinitions section.
type AuthenticatorConverter func(a framer.Authenticator) (string, *SecurityScheme, error)

// convertHeaderAPIKey is the built-in converter for header API key
// authenticators.
func convertHeaderAPIKey(a framer.Authenticator) (string, *SecurityScheme, error) {
	auth := a.(*framer.HeaderAPIKeyAuthenticator)
	return auth.AuthenticatorName(), &SecurityScheme{
		Type: "apiKey",
		In:   InHeader,
		Name: auth.Header(),
	}, nil
}
