package identity

import (
	"unicode"

	"clinic-dashboard-service/internal/pkg/constvars"

	"github.com/supertokens/supertokens-golang/recipe/emailpassword"
	"github.com/supertokens/supertokens-golang/recipe/emailpassword/epmodels"
	"github.com/supertokens/supertokens-golang/recipe/emailverification"
	"github.com/supertokens/supertokens-golang/recipe/emailverification/evmodels"
)

// accountGateway is the part of the supertokens SDK the client calls.
type accountGateway interface {
	SignIn(tenantID, email, password string) (epmodels.SignInResponse, error)
	SignUp(tenantID, email, password string) (epmodels.SignUpResponse, error)
	GetUserByEmail(tenantID, email string) (*epmodels.User, error)
	SendResetPasswordEmail(tenantID, userID string) (epmodels.SendResetPasswordEmailResponse, error)
	IsEmailVerified(userID, email string) (bool, error)
	SendEmailVerificationEmail(tenantID, userID, email string) (evmodels.SendEmailVerificationLinkResponse, error)
}

type supertokensGateway struct{}

func (supertokensGateway) SignIn(tenantID, email, password string) (epmodels.SignInResponse, error) {
	return emailpassword.SignIn(tenantID, email, password)
}

func (supertokensGateway) SignUp(tenantID, email, password string) (epmodels.SignUpResponse, error) {
	return emailpassword.SignUp(tenantID, email, password)
}

func (supertokensGateway) GetUserByEmail(tenantID, email string) (*epmodels.User, error) {
	return emailpassword.GetUserByEmail(tenantID, email)
}

func (supertokensGateway) SendResetPasswordEmail(tenantID, userID string) (epmodels.SendResetPasswordEmailResponse, error) {
	return emailpassword.SendResetPasswordEmail(tenantID, userID)
}

func (supertokensGateway) IsEmailVerified(userID, email string) (bool, error) {
	return emailverification.IsEmailVerified(userID, &email)
}

func (supertokensGateway) SendEmailVerificationEmail(tenantID, userID, email string) (evmodels.SendEmailVerificationLinkResponse, error) {
	return emailverification.SendEmailVerificationEmail(tenantID, userID, &email)
}

const minPasswordLength = 8

var authMessages = map[string]string{
	constvars.AuthCodeEmailAlreadyInUse: "The email address is already in use by another account.",
	constvars.AuthCodeUserNotFound:      "There is no user record corresponding to this email.",
	constvars.AuthCodeWrongPassword:     "The password is invalid.",
	constvars.AuthCodeInvalidCredential: "The email or password is incorrect.",
	constvars.AuthCodeUserDisabled:      "This account has been disabled.",
	constvars.AuthCodeTooManyRequests:   "Too many attempts, please try again later.",
	constvars.AuthCodeWeakPassword:      "Password must be at least 8 characters and contain a letter and a number.",
	constvars.AuthCodeInvalidEmail:      "The email address is badly formatted.",
	constvars.AuthCodeEmailNotVerified:  "Please verify your email address. A verification link has been sent.",
	constvars.AuthCodeInternal:          "The identity service is unavailable, please try again.",
}

// strongPassword follows the default emailpassword rule: eight characters with
// at least one letter and one digit.
func strongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// Message returns the user facing text for an auth code.
func Message(code string) string {
	return authMessages[code]
}
