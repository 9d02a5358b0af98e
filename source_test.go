package starenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairsSource(t *testing.T) {
	s := PairsSource{"A=1", "B=", "=C:=C:\\", "junk", "A=2", "C=x=y"}

	assert.Equal(t, []string{"A", "B", "=C:", "C"}, s.Names())

	v, ok := s.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	v, ok = s.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	v, ok = s.Lookup("C")
	assert.True(t, ok)
	assert.Equal(t, "x=y", v)

	_, ok = s.Lookup("D")
	assert.False(t, ok)
}

func TestProcessSource(t *testing.T) {
	t.Setenv("STARENV_TEST_VARIABLE", "value")

	assert.Contains(t, ProcessSource.Names(), "STARENV_TEST_VARIABLE")

	v, ok := ProcessSource.Lookup("STARENV_TEST_VARIABLE")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestDotenvSource(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	local := filepath.Join(dir, "local.env")
	require.NoError(t, os.WriteFile(base, []byte("# base\nZED=z\nAPP_PORT=8080\nexport APP_NAME=\"demo app\"\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("APP_PORT=9090\n"), 0o600))

	s, err := DotenvSource(base, local)
	require.NoError(t, err)

	assert.Equal(t, []string{"APP_NAME", "APP_PORT", "ZED"}, s.Names())

	v, ok := s.Lookup("APP_PORT")
	assert.True(t, ok)
	assert.Equal(t, "9090", v)

	v, ok = s.Lookup("APP_NAME")
	assert.True(t, ok)
	assert.Equal(t, "demo app", v)

	_, err = DotenvSource(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

func TestPIDSource(t *testing.T) {
	s, err := PIDSource(int32(os.Getpid()))
	if err != nil {
		t.Skipf("process environments are not available: %v", err)
	}
	// /proc/<pid>/environ reflects the environment at exec time, not later changes.
	assert.NotEmpty(t, s.Names())
}

func TestOverlaySource(t *testing.T) {
	base := PairsSource{"A=base", "B=base"}
	top := PairsSource{"C=top", "A=top"}
	s := OverlaySource{top, base}

	assert.Equal(t, []string{"A", "B", "C"}, s.Names())

	v, _ := s.Lookup("A")
	assert.Equal(t, "top", v)
	v, _ = s.Lookup("B")
	assert.Equal(t, "base", v)
	v, _ = s.Lookup("C")
	assert.Equal(t, "top", v)

	_, ok := s.Lookup("D")
	assert.False(t, ok)
}
