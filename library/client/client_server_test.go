package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/library-books-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-books-go/library/app"
	"github.com/AntonStoeckl/library-books-go/library/client"
	"github.com/AntonStoeckl/library-books-go/library/shell/config"
	"github.com/AntonStoeckl/library-books-go/library/web"
)

func Test_Client_AgainstLibraryServer(t *testing.T) {
	// arrange
	serverURL := givenLibraryServer(t)
	ctx := context.Background()
	manager := client.New(serverURL, "marta", "s3cret")
	reader := client.New(serverURL, "rita", "s3cret")

	// act
	refactoringID, err := manager.AddBook(ctx, "Refactoring")
	require.NoError(t, err)
	dddID, err := manager.AddBook(ctx, "Domain-Driven Design")
	require.NoError(t, err)
	require.NoError(t, manager.SetTitle(ctx, refactoringID, "Refactoring, 2nd Edition"))

	// assert
	books, err := reader.ListBooks(ctx, "")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, dddID, books[0].ID)
	assert.Equal(t, "Refactoring, 2nd Edition", books[1].Title)

	found, err := reader.ListBooks(ctx, "2nd")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, refactoringID, found[0].ID)

	var apiErr *client.APIError
	require.True(t, errors.As(reader.DeleteBook(ctx, dddID), &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	require.NoError(t, manager.DeleteBook(ctx, dddID))
	remaining, err := reader.ListBooks(ctx, "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, refactoringID, remaining[0].ID)
}

/*** helpers ***/

func givenLibraryServer(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	handlers, err := app.BuildHandlers(memengine.NewEventStore(), app.Observability{})
	require.NoError(t, err)

	s, err := web.NewServer(
		handlers,
		web.NewAuthenticator([]config.User{
			{Name: "marta", PasswordHash: string(hash), Groups: []string{"library_manager"}},
			{Name: "rita", PasswordHash: string(hash), Groups: []string{"library_user"}},
		}),
		web.WithClock(func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)

	server := httptest.NewServer(s.Router())
	t.Cleanup(server.Close)

	return server.URL
}
