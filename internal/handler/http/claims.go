package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/user"
)

// userIDFromRequest pulls the account ID out of the verified token.
func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", user.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", user.ErrInvalidToken
	}

	return userID, nil
}

// employeeIDFromRequest pulls the employee ID out of the verified token. An
// account without an employee_id claim has no HR record yet.
func employeeIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", user.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotLinked
	}

	return employeeID, nil
}
