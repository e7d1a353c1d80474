package native

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/griddyn/griddyn-go/pkg/native/mocks"
	"github.com/griddyn/griddyn-go/pkg/status"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// matchingLibrary returns a mock that exports every status with its
// compiled value.
func matchingLibrary(t *testing.T, ver string) *mocks.MockLibrary {
	t.Helper()
	lib := mocks.NewMockLibrary(t)
	lib.EXPECT().Version().Return(ver).Maybe()
	lib.EXPECT().Constant(mock.Anything).RunAndReturn(func(name string) (int, bool) {
		s, err := status.Parse(name)
		if err != nil {
			return 0, false
		}
		return s.Value(), true
	})
	return lib
}

func TestVerify_Matching(t *testing.T) {
	lib := matchingLibrary(t, "1.0")
	require.NoError(t, Verify(lib, VerifyConfig{Logger: discardLogger()}))
	lib.AssertNumberOfCalls(t, "Constant", status.Count)
}

func TestVerify_NewerCompatibleVersion(t *testing.T) {
	lib := matchingLibrary(t, "1.4.2")
	assert.NoError(t, Verify(lib, VerifyConfig{Logger: discardLogger()}))
}

func TestVerify_IncompatibleVersion(t *testing.T) {
	for _, ver := range []string{"2.0", "0.9", "garbage"} {
		t.Run(ver, func(t *testing.T) {
			lib := matchingLibrary(t, ver)
			err := Verify(lib, VerifyConfig{Logger: discardLogger()})
			assert.ErrorIs(t, err, ErrIncompatibleVersion)
		})
	}
}

func TestVerify_SkipVersion(t *testing.T) {
	lib := matchingLibrary(t, "9.0")
	assert.NoError(t, Verify(lib, VerifyConfig{Logger: discardLogger(), SkipVersion: true}))
}

func TestVerify_ReportsEveryProblem(t *testing.T) {
	lib := mocks.NewMockLibrary(t)
	lib.EXPECT().Version().Return("1.0")
	lib.EXPECT().Constant("griddyn_solve_error").Return(20, true)
	lib.EXPECT().Constant("griddyn_add_failure").Return(0, false)
	lib.EXPECT().Constant(mock.Anything).RunAndReturn(func(name string) (int, bool) {
		s, _ := status.Parse(name)
		return s.Value(), true
	})

	err := Verify(lib, VerifyConfig{Logger: discardLogger()})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMissingConstant)
	assert.Contains(t, err.Error(), "griddyn_add_failure")

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, status.SolveError, mismatch.Status)
	assert.Equal(t, 20, mismatch.Native)
	assert.Equal(t, "griddyn_solve_error: binding has 8, library has 20", mismatch.Error())

	assert.NotErrorIs(t, err, ErrIncompatibleVersion)
}

func TestVerify_Header(t *testing.T) {
	lib, err := LoadHeader(filepath.Join("testdata", "griddyn_export.h"), "", "")
	require.NoError(t, err)
	assert.Equal(t, status.NativeABI, lib.Version())
	assert.Len(t, lib.Constants(), status.Count)

	assert.NoError(t, Verify(lib, VerifyConfig{Logger: discardLogger(), Strict: true}))
}

func TestVerify_RenumberedHeader(t *testing.T) {
	lib, err := LoadHeader(filepath.Join("testdata", "griddyn_export_renumbered.h"), "griddyn_status", "1.0")
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	err = Verify(lib, VerifyConfig{Logger: logger})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExtraConstant)

	var mismatches []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var m *MismatchError
		if errors.As(e, &m) {
			mismatches = append(mismatches, m.Status.String())
		}
	}
	assert.ElementsMatch(t, []string{"query_load_failure", "file_load_failure"}, mismatches)
	assert.Contains(t, logs.String(), "griddyn_license_failure")

	err = Verify(lib, VerifyConfig{Logger: logger, Strict: true})
	assert.ErrorIs(t, err, ErrExtraConstant)
}

func TestLoadHeader_Errors(t *testing.T) {
	_, err := LoadHeader(filepath.Join("testdata", "missing.h"), "", "")
	assert.Error(t, err)

	_, err = LoadHeader(filepath.Join("testdata", "griddyn_export.h"), "no_such_enum", "")
	assert.Error(t, err)
}

func TestHeaderLibraryConstants(t *testing.T) {
	lib, err := LoadHeader(filepath.Join("testdata", "griddyn_export.h"), "griddyn_status", "0.6.0")
	require.NoError(t, err)
	assert.Equal(t, "0.6.0", lib.Version())

	v, ok := lib.Constant("griddyn_object_not_initialized")
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	consts := lib.Constants()
	consts[0].Value = 99
	v, _ = lib.Constant("griddyn_ok")
	assert.Equal(t, 0, v, "Constants must return a copy")
}
