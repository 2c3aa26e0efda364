package handlers

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/router"
)

type Test struct {
	description  string
	method       string
	route        string
	token        string
	bodyinput    []byte
	expectedCode int
}

const testSign = "test-signing-key"

func signToken(t *testing.T, role string) string {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = "test_" + role
	claims["uid"] = primitive.NewObjectID().Hex()
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	signed, err := token.SignedString([]byte(testSign))
	if err != nil {
		t.Fatalf("cannot sign test token: %v", err)
	}
	return signed
}

// Covers request validation and authorization paths that resolve before
// any database call is issued.
func TestRequestValidation(t *testing.T) {
	t.Setenv("SIGN", testSign)

	app := fiber.New()
	router.SetupRoutes(app)

	adminToken := signToken(t, "admin")
	userToken := signToken(t, "user")

	tests := []Test{
		{
			description:  "booking requires a bearer token",
			method:       "POST",
			route:        "/booking",
			bodyinput:    []byte(`{"travel_package":"abc","number_of_travellers":1}`),
			expectedCode: 400,
		},
		{
			description:  "status change with garbage token is rejected",
			method:       "PATCH",
			route:        "/booking/" + primitive.NewObjectID().Hex() + "/status",
			token:        "not-a-jwt",
			bodyinput:    []byte(`{"action":"confirm"}`),
			expectedCode: 401,
		},
		{
			description:  "unknown status action is rejected before any lookup",
			method:       "PATCH",
			route:        "/booking/" + primitive.NewObjectID().Hex() + "/status",
			token:        signToken(t, "admin"),
			bodyinput:    []byte(`{"action":"archive"}`),
			expectedCode: 400,
		},
		{
			description:  "plain users cannot reach the status endpoint",
			method:       "PATCH",
			route:        "/booking/" + primitive.NewObjectID().Hex() + "/status",
			token:        userToken,
			bodyinput:    []byte(`{"action":"confirm"}`),
			expectedCode: 403,
		},
		{
			description:  "trip with start date after end date is rejected",
			method:       "PUT",
			route:        "/journey/next-trip",
			token:        userToken,
			bodyinput:    []byte(`{"destination":"` + primitive.NewObjectID().Hex() + `","start_date":"2026-09-10","end_date":"2026-09-01"}`),
			expectedCode: 400,
		},
		{
			description:  "trip with malformed destination id is rejected",
			method:       "PUT",
			route:        "/journey/next-trip",
			token:        userToken,
			bodyinput:    []byte(`{"destination":"not-an-id","start_date":"2026-09-01","end_date":"2026-09-10"}`),
			expectedCode: 400,
		},
		{
			description:  "trip with malformed dates is rejected",
			method:       "PUT",
			route:        "/journey/next-trip",
			token:        userToken,
			bodyinput:    []byte(`{"destination":"` + primitive.NewObjectID().Hex() + `","start_date":"10/09/2026","end_date":"2026-09-20"}`),
			expectedCode: 400,
		},
		{
			description:  "registration with short password is rejected",
			method:       "POST",
			route:        "/register",
			bodyinput:    []byte(`{"login":"newuser","password":"short"}`),
			expectedCode: 400,
		},
		{
			description:  "registration with unknown role is rejected",
			method:       "POST",
			route:        "/register",
			bodyinput:    []byte(`{"login":"newuser","password":"longenough","role":"superadmin"}`),
			expectedCode: 400,
		},
		{
			description:  "booking for zero travellers is rejected",
			method:       "POST",
			route:        "/booking",
			token:        adminToken,
			bodyinput:    []byte(`{"travel_package":"` + primitive.NewObjectID().Hex() + `","number_of_travellers":0}`),
			expectedCode: 400,
		},
	}

	for _, test := range tests {
		req, _ := http.NewRequest(
			test.method,
			test.route,
			bytes.NewBuffer(test.bodyinput))
		req.Header.Set("Content-Type", "application/json")
		if test.token != "" {
			req.Header.Set("Authorization", "Bearer "+test.token)
		}

		res, err := app.Test(req, -1)
		if err != nil {
			assert.Failf(t, "request failed", "%v: %v", test.description, err)
			continue
		}

		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
	}
}
