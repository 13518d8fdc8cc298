package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// Identity is what the API needs from a verified ID token.
type Identity struct {
	UID   string
	Email string
	Admin bool
}

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	identity := &Identity{UID: result.UID}
	if email, ok := result.Claims["email"].(string); ok {
		identity.Email = email
	}
	if admin, ok := result.Claims["admin"].(bool); ok {
		identity.Admin = admin
	}
	return identity, nil
}

// SetAdminClaim toggles the "admin" custom claim. It takes effect on the
// user's next token refresh.
func (f *FirebaseAuthClient) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return err
	}

	claims := make(map[string]interface{}, len(user.CustomClaims)+1)
	for k, v := range user.CustomClaims {
		claims[k] = v
	}
	claims["admin"] = admin

	return f.client.SetCustomUserClaims(ctx, uid, claims)
}

func (f *FirebaseAuthClient) LookupUID(ctx context.Context, email string) (string, error) {
	user, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.UID, nil
}
