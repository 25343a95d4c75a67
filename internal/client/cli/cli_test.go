package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophmedia/internal/client/iocli"
)

// recordIO собирает весь вывод в буфер, ввод берется из очередей
func recordIO(out *bytes.Buffer, inputs, passwords []string) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) { fmt.Fprintln(out, a...) },
		PrintfFunc:  func(format string, a ...any) { fmt.Fprintf(out, format, a...) },
		ReadInputFunc: func(prompt string) (string, error) {
			if len(inputs) == 0 {
				return "", fmt.Errorf("unexpected prompt %q", prompt)
			}
			v := inputs[0]
			inputs = inputs[1:]
			return v, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if len(passwords) == 0 {
				return "", fmt.Errorf("unexpected password prompt %q", prompt)
			}
			v := passwords[0]
			passwords = passwords[1:]
			return v, nil
		},
		WriteFunc: out.Write,
	}
}

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func writePasswordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestGetPassword_FromEnvVar проверяет чтение пароля из переменной окружения
func TestGetPassword_FromEnvVar(t *testing.T) {
	cli := &Cli{getenv: env(map[string]string{PasswordEnv: "env_password_123"})}

	password, err := cli.getPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "env_password_123", password)
}

// TestGetPassword_FromFile проверяет чтение пароля из файла
func TestGetPassword_FromFile(t *testing.T) {
	cli := &Cli{
		getenv:    env(nil),
		passwords: Passwords{FromFile: writePasswordFile(t, "file_password_456\n")},
	}

	password, err := cli.getPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "file_password_456", password)
}

// TestGetPassword_Priority: переменная окружения важнее файла, файл важнее ввода
func TestGetPassword_Priority(t *testing.T) {
	var out bytes.Buffer
	mockIO := recordIO(&out, nil, []string{"typed"})
	file := writePasswordFile(t, "from_file")

	cli := &Cli{io: mockIO, getenv: env(map[string]string{PasswordEnv: "from_env"}), passwords: Passwords{FromFile: file}}
	password, err := cli.getPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "from_env", password)

	cli.getenv = env(nil)
	password, err = cli.getPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "from_file", password)

	cli.passwords = Passwords{}
	password, err = cli.getPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "typed", password)
	assert.Empty(t, mockIO.ReadPasswordCalls()[1:])
}

func TestGetPassword_Errors(t *testing.T) {
	cli := &Cli{getenv: env(nil), passwords: Passwords{FromFile: writePasswordFile(t, " \n")}}
	_, err := cli.getPassword("Password: ")
	assert.EqualError(t, err, "password file is empty")

	cli.passwords.FromFile = filepath.Join(t.TempDir(), "missing")
	_, err = cli.getPassword("Password: ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read password file")

	var out bytes.Buffer
	cli = &Cli{io: recordIO(&out, nil, []string{""}), getenv: env(nil)}
	_, err = cli.getPassword("Password: ")
	assert.EqualError(t, err, "password cannot be empty")
}

func TestReadNewPassword(t *testing.T) {
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, []string{"secret123", "secret123", "a", "b"})}

	password, err := cli.readNewPassword("New password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret123", password)

	_, err = cli.readNewPassword("New password: ")
	assert.EqualError(t, err, "passwords do not match")
}

func TestInputOrArg(t *testing.T) {
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, []string{"typed", ""}, nil)}

	v, err := cli.inputOrArg([]string{"alice"}, 0, "Username: ")
	require.NoError(t, err)
	assert.Equal(t, "alice", v)

	v, err = cli.inputOrArg(nil, 0, "Username: ")
	require.NoError(t, err)
	assert.Equal(t, "typed", v)

	_, err = cli.inputOrArg(nil, 0, "Username: ")
	assert.EqualError(t, err, "Username cannot be empty")
}

func TestPrintUsage(t *testing.T) {
	var out bytes.Buffer
	PrintUsage(&out)
	for _, cmd := range []string{"setup", "login", "logout", "status", "passwd", "ls", "cat", "track", "get", "downloads", "sync", PasswordEnv} {
		assert.Contains(t, out.String(), cmd)
	}
}
