// Command token mints access tokens for local development. Authentication
// is issued by an upstream identity service in deployed environments.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

func main() {
	_ = godotenv.Load()

	userID := flag.StringP("user-id", "u", "", "user id to put in the token (required)")
	employeeID := flag.StringP("employee-id", "e", "", "linked employee id, empty for none")
	role := flag.StringP("role", "r", string(user.RoleEmployee), "ADMIN, HR_MANAGER or EMPLOYEE")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	secret := flag.String("secret", os.Getenv("JWT_SECRET_KEY"), "HS256 signing secret")
	flag.Parse()

	if *userID == "" || *secret == "" {
		flag.Usage()
		os.Exit(2)
	}

	parsedRole, err := user.ParseRole(*role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid role %q: %v\n", *role, err)
		os.Exit(2)
	}

	var emp *string
	if *employeeID != "" {
		emp = employeeID
	}

	token, expiresAt, err := jwt.NewJWTService(*secret, ttl.String()).GenerateAccessToken(*userID, emp, parsedRole)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to sign token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
