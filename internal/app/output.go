package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"

	"github.com/Mikhail-Beresnev/shared-ng/internal/client/api"
)

//nolint:gochecknoglobals // Shared terminal styles.
var (
	successStyle = color.New(color.FgGreen, color.Bold)
	failureStyle = color.New(color.FgRed, color.Bold)
	labelStyle   = color.New(color.FgCyan)
)

// printResponse writes the status line followed by the pretty-printed body.
func printResponse(w io.Writer, response *api.Response) {
	successStyle.Fprintf(w, "%d %s\n", response.StatusCode, http.StatusText(response.StatusCode))
	fmt.Fprintln(w, strings.TrimRight(response.Pretty(), "\n"))
}

// printFailure writes the error, with the server body when there is one.
func printFailure(w io.Writer, err error) {
	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) {
		failureStyle.Fprintf(w, "ERROR %v\n", err)

		return
	}

	failureStyle.Fprintf(w, "%d %s\n", httpErr.StatusCode, http.StatusText(httpErr.StatusCode))

	body := strings.TrimSpace(string(httpErr.Body))
	if body == "" {
		return
	}

	if gjson.Valid(body) {
		body = strings.TrimRight(gjson.Get(body, "@pretty").Raw, "\n")
	}

	fmt.Fprintln(w, body)
}

// printUser writes the session outcome.
func printUser(w io.Writer, user *api.User) {
	if user == nil {
		failureStyle.Fprintln(w, "Not logged in")

		return
	}

	successStyle.Fprintln(w, "Logged in")
	printField(w, "wwuid", user.Wwuid)
	printField(w, "username", user.Username)
	printField(w, "full name", user.FullName)
	printField(w, "status", user.Status)

	if len(user.Roles) > 0 {
		printField(w, "roles", strings.Join(user.Roles, ", "))
	}
}

func printField(w io.Writer, name, value string) {
	if value == "" {
		return
	}

	labelStyle.Fprintf(w, "  %-10s", name+":")
	fmt.Fprintln(w, value)
}
