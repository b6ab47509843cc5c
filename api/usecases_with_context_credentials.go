package api

import (
	"context"

	"github.com/srct/whats-open/usecases"
	"github.com/srct/whats-open/utils"
)

// usecasesWithCreds falls back to anonymous credentials, which public reads accept and
// writes reject.
func usecasesWithCreds(ctx context.Context, uc usecases.Usecases) *usecases.UsecasesWithCreds {
	creds, _ := utils.CredentialsFromCtx(ctx)

	return &usecases.UsecasesWithCreds{
		Usecases:    uc,
		Credentials: creds,
	}
}
