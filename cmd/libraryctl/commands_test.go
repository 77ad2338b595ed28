package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Commands(t *testing.T) {
	testCases := []struct {
		description   string
		args          []string
		expectedCalls []string
		expectedOut   string
	}{
		{
			description:   "list without text",
			args:          []string{"list"},
			expectedCalls: []string{"GET /api/books q="},
			expectedOut:   "b-1 Refactoring\nb-2 Domain-Driven Design\n",
		},
		{
			description:   "list joins the search words",
			args:          []string{"list", "domain", "driven"},
			expectedCalls: []string{"GET /api/books q=domain driven"},
			expectedOut:   "b-1 Refactoring\nb-2 Domain-Driven Design\n",
		},
		{
			description:   "add one book per title",
			args:          []string{"add", "Refactoring", "Release It!"},
			expectedCalls: []string{"POST /api/books q=", "POST /api/books q="},
			expectedOut:   "Book added with ID b-new.\nBook added with ID b-new.\n",
		},
		{
			description:   "set-title",
			args:          []string{"set-title", "b-1", "Refactoring, 2nd Edition"},
			expectedCalls: []string{"PUT /api/books/b-1 q="},
			expectedOut:   "Title set for Book ID b-1.\n",
		},
		{
			description:   "del several ids",
			args:          []string{"del", "b-1", "b-2"},
			expectedCalls: []string{"DELETE /api/books/b-1 q=", "DELETE /api/books/b-2 q="},
			expectedOut:   "Book with ID b-1 deleted.\nBook with ID b-2 deleted.\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			server, calls := givenFakeLibraryServer(t)

			// act
			out, err := executeCommand(append(tc.args, "--server", server.URL, "--user", "marta", "--password", "pw")...)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.expectedOut, out)
			assert.Equal(t, tc.expectedCalls, calls())
		})
	}
}

func Test_Commands_ValidateArguments(t *testing.T) {
	for _, args := range [][]string{
		{"add"},
		{"set-title", "b-1"},
		{"del"},
	} {
		_, err := executeCommand(args...)
		assert.Error(t, err, args)
	}
}

func Test_Commands_ReportServerErrors(t *testing.T) {
	// arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not found: book \"b-9\"","status":404}`)
	}))
	t.Cleanup(server.Close)

	// act
	_, err := executeCommand("del", "b-9", "--server", server.URL)

	// assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

/*** helpers ***/

func executeCommand(args ...string) (string, error) {
	var out bytes.Buffer

	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func givenFakeLibraryServer(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()

	var (
		mu    sync.Mutex
		calls []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path+" q="+r.URL.Query().Get("q"))
		mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"books":[{"id":"b-1","title":"Refactoring"},{"id":"b-2","title":"Domain-Driven Design"}],"count":2}`)
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"b-new"}`)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(server.Close)

	return server, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), calls...)
	}
}
