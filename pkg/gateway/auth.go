package gateway

import "context"

// Register creates an account. It does not log the new user in.
func (g *Gateway) Register(ctx context.Context, creds Credentials) error {
	if err := g.validate.Struct(creds); err != nil {
		return err
	}
	var out userSchema
	return g.post(ctx, "/auth/register", creds, &out, false)
}

// Login exchanges credentials for a bearer token and stores it in the
// session.
func (g *Gateway) Login(ctx context.Context, creds Credentials) error {
	if err := g.validate.Struct(creds); err != nil {
		return err
	}
	var out tokenSchema
	if err := g.post(ctx, "/auth/login", creds, &out, false); err != nil {
		return err
	}
	return g.session.SetToken(out.AccessToken)
}

// Logout drops the stored credential.
func (g *Gateway) Logout() error {
	return g.session.Clear()
}
