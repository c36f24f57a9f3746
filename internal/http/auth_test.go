package handlers_test

import (
	"strconv"
	"testing"
	"time"

	"pricecheck/internal/services"
)

func TestLoginIssuesSessionCookie(t *testing.T) {
	app := newTestApp(t, true)

	before := time.Now()
	resp, err := app.Test(jsonReq("POST", "/api/login",
		`{"password":"`+services.DailyCredential(before)+`"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	tok := cookieValue(resp, "session_exp")
	if tok == "" {
		t.Fatal("session cookie missing")
	}
	exp, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		t.Fatalf("cookie is not epoch seconds: %q", tok)
	}
	want := before.Add(1800 * time.Second).Unix()
	if exp < want-2 || exp > want+2 {
		t.Fatalf("want expiry around %d, got %d", want, exp)
	}

	body := decodeBody(t, resp)
	if body["success"] != true || body["expires_at"] == nil {
		t.Fatalf("bad login body: %+v", body)
	}
}

func TestLoginRejectsBadPasswords(t *testing.T) {
	app := newTestApp(t, true)

	resp, err := app.Test(jsonReq("POST", "/api/login", `{"password":"0000"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("wrong password: want 401, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("POST", "/api/login", `{"password":"   "}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("blank password: want 400, got %d", resp.StatusCode)
	}
}
