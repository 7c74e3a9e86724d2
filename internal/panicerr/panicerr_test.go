package panicerr

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		fun       func() error
		errStr    string
		wrapped   string
		haveStack bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name:   "normal err",
			fun:    func() error { return errors.New("bang") },
			errStr: "bang",
		},
		{
			name:      "panic err",
			fun:       func() error { panic(errors.New("bang")) },
			errStr:    "panic err paniced: bang",
			wrapped:   "bang",
			haveStack: true,
		},
		{
			name:      "string panic",
			fun:       func() error { panic("hello") },
			errStr:    "string panic paniced: hello",
			haveStack: true,
		},
		{
			name:      "index panic",
			fun:       func() error { var xs []int; return func() error { xs[1] = 0; return nil }() },
			errStr:    "index panic paniced: runtime error: index out of range [1] with length 0",
			haveStack: true,
		},
		{
			name:   "exit",
			fun:    func() error { runtime.Goexit(); return nil },
			errStr: "exit called runtime.Goexit",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Recover(tc.name, tc.fun)

			if tc.errStr == "" {
				assert.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.errStr)

			if tc.wrapped != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wrapped)
			}
			if tc.haveStack {
				assert.True(t, IsPanic(err))
				assert.NotEmpty(t, PanicStack(err))
			} else {
				assert.False(t, IsPanic(err))
				assert.Empty(t, PanicStack(err))
			}
			assert.Equal(t, tc.errStr == "exit called runtime.Goexit", IsExit(err))
		})
	}
}
