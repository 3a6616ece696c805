package cache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestThatEnvironmentVariableIsUsed(t *testing.T) {
	is := is.New(t)
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	t.Setenv(DirEnvVar, dir)

	d, err := Dir()
	is.NoErr(err)
	is.Equal(d, dir)

	fi, err := os.Stat(dir)
	is.NoErr(err)
	is.True(fi.IsDir()) // directory should be created on first use
}

func TestThatConcurrentCallersShareTheDir(t *testing.T) {
	is := is.New(t)
	dir := filepath.Join(t.TempDir(), "shared")
	t.Setenv(DirEnvVar, dir)

	errs := make(chan error, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Dir()
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		is.NoErr(err)
	}
}

func TestThatPathIsInsideCacheDir(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	t.Setenv(DirEnvVar, dir)

	p, err := Path("../cf-standard-name-table.xml")
	is.NoErr(err)
	is.Equal(p, filepath.Join(dir, "cf-standard-name-table.xml"))
}

func TestThatRemoveIgnoresMissingFiles(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	t.Setenv(DirEnvVar, dir)

	is.NoErr(Remove("missing.xml"))

	is.NoErr(os.WriteFile(filepath.Join(dir, "table.xml"), []byte("<t/>"), 0600))
	is.NoErr(Remove("table.xml"))

	_, err := os.Stat(filepath.Join(dir, "table.xml"))
	is.True(os.IsNotExist(err))
}
