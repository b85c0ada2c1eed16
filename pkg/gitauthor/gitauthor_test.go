package gitauthor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs(t *testing.T) {
	assert.Equal(t, []string{"commit"}, Args(Options{}))

	assert.Equal(t,
		[]string{"commit", "--amend", "-C", "HEAD", "--reset-author"},
		Args(Options{Amend: true}))

	assert.Equal(t,
		[]string{"commit", "-m", "msg"},
		Args(Options{ExtraArgs: []string{"-m", "msg"}}))
}

func TestEnv(t *testing.T) {
	env := Env(Options{Name: "Jan Novak", Email: "jan@example.com", Date: "2024-03-01"})

	assert.Contains(t, env, "GIT_AUTHOR_NAME=Jan Novak")
	assert.Contains(t, env, "GIT_AUTHOR_EMAIL=jan@example.com")
	assert.Contains(t, env, "GIT_AUTHOR_DATE=2024-03-01T13:00+00")
	assert.Contains(t, env, "GIT_COMMITTER_NAME=Jan Novak")
	assert.Contains(t, env, "GIT_COMMITTER_DATE=2024-03-01T13:00+00")
}

func TestEnvCustomTime(t *testing.T) {
	env := Env(Options{Date: "2024-03-01", Time: "T09:30+02"})
	assert.Contains(t, env, "GIT_AUTHOR_DATE=2024-03-01T09:30+02")
}
