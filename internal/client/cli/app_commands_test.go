package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(api client.Client, r *bufio.Reader) *App {
	return &App{
		config: &config.Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: time.Second},
		api:    api,
		reader: r,
	}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		return []byte(pw), nil
	}
}

type fakeClient struct {
	// SignUp
	signUpIn   *client.SignUpParams
	signUpResp *models.User
	signUpErr  error

	// SignIn
	signInUser     string
	signInPassword string
	signInResp     *models.User
	signInErr      error

	// GetUser
	getID   int64
	getResp *models.User
	getErr  error

	// ListUsers
	listOut []*models.User
	listErr error

	// UpdateUser
	updateIn  *client.UpdateParams
	updateErr error

	// DeleteUser
	delID  int64
	delErr error

	closed bool
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeClient) SignUp(ctx context.Context, params client.SignUpParams) (*models.User, error) {
	f.signUpIn = &params
	return f.signUpResp, f.signUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, userName string, password string) (*models.User, error) {
	f.signInUser = userName
	f.signInPassword = password
	return f.signInResp, f.signInErr
}

func (f *fakeClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	f.getID = id
	return f.getResp, f.getErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]*models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, params client.UpdateParams) error {
	f.updateIn = &params
	return f.updateErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id int64) error {
	f.delID = id
	return f.delErr
}

// ------------ tests ------------

func TestSignUpCommand_SendsCollectedInput(t *testing.T) {
	stubPassword(t, "p@ss1234")

	f := &fakeClient{signUpResp: &models.User{ID: 1, UserName: "alice"}}
	a := newTestApp(f, readerFromLines("Alice", "Liddell", "alice@example.com", "alice"))

	a.signUp(context.Background())

	require.NotNil(t, f.signUpIn)
	assert.Equal(t, "Alice", f.signUpIn.FirstName)
	assert.Equal(t, "Liddell", f.signUpIn.LastName)
	assert.Equal(t, "alice@example.com", f.signUpIn.Email)
	assert.Equal(t, "alice", f.signUpIn.UserName)
	assert.Equal(t, "p@ss1234", f.signUpIn.Password)
}

func TestLoginCommand_SetsCurrentUser(t *testing.T) {
	stubPassword(t, "p@ss1234")

	f := &fakeClient{signInResp: &models.User{ID: 7, UserName: "alice"}}
	a := newTestApp(f, readerFromLines("alice"))

	a.login(context.Background())

	require.True(t, a.isLoggedIn())
	assert.Equal(t, "alice", f.signInUser)
	assert.Equal(t, "p@ss1234", f.signInPassword)
	assert.Equal(t, int64(7), a.user.ID)
}

func TestLoginCommand_FailureLeavesLoggedOut(t *testing.T) {
	stubPassword(t, "wrong")

	f := &fakeClient{signInErr: client.ErrUnauthorized}
	a := newTestApp(f, readerFromLines("alice"))

	a.login(context.Background())

	assert.False(t, a.isLoggedIn())
}

func TestGetCommand_ParsesID(t *testing.T) {
	f := &fakeClient{getResp: &models.User{ID: 9, UserName: "bob"}}
	a := newTestApp(f, readerFromLines())

	a.get(context.Background(), []string{"9"})

	assert.Equal(t, int64(9), f.getID)
}

func TestGetCommand_RejectsBadID(t *testing.T) {
	f := &fakeClient{}
	a := newTestApp(f, readerFromLines())

	a.get(context.Background(), []string{"not-a-number"})

	assert.Zero(t, f.getID)
}

func TestUpdateCommand_BlankFieldsStayBlank(t *testing.T) {
	stubPassword(t, "")

	f := &fakeClient{}
	// id arg, then blank username/email/first/last, blank password keeps it
	a := newTestApp(f, readerFromLines("", "", "Alicia", ""))

	a.update(context.Background(), []string{"7"})

	require.NotNil(t, f.updateIn)
	assert.Equal(t, int64(7), f.updateIn.ID)
	assert.Empty(t, f.updateIn.UserName)
	assert.Empty(t, f.updateIn.Email)
	assert.Equal(t, "Alicia", f.updateIn.FirstName)
	assert.Empty(t, f.updateIn.NewPassword)
	assert.Empty(t, f.updateIn.OldPassword)
}

func TestDeleteCommand_RequiresConfirmation(t *testing.T) {
	f := &fakeClient{}
	a := newTestApp(f, readerFromLines("n"))

	a.delete(context.Background(), []string{"7"})

	assert.Zero(t, f.delID, "delete must not run without confirmation")
}

func TestDeleteCommand_Confirmed(t *testing.T) {
	f := &fakeClient{}
	a := newTestApp(f, readerFromLines("y"))

	a.delete(context.Background(), []string{"7"})

	assert.Equal(t, int64(7), f.delID)
}
