package search_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/beltools/radseek"
	"github.com/beltools/radseek/fs"
	"github.com/beltools/radseek/mock"
	"github.com/beltools/radseek/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parent directories as needed.
func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
}

// newTestEngine builds an engine over a real filesystem walker and decoder.
func newTestEngine(t *testing.T, config radseek.Config) *search.Engine {
	t.Helper()
	walker, err := fs.NewWalker(config.Root, config.MaxDepth, config.Extensions)
	require.NoError(t, err)
	engine, err := search.NewEngine(config, walker, fs.NewDecoder(config.MaxFileSize))
	require.NoError(t, err)
	return engine
}

// corpusConfig returns a default configuration rooted at a fresh corpus.
func corpusConfig(t *testing.T) radseek.Config {
	t.Helper()
	config := radseek.DefaultConfig()
	config.Root = t.TempDir()
	return config
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid configuration", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		config.TopN = 0

		_, err := search.NewEngine(config, &mock.Walker{}, &mock.Decoder{})
		require.Error(t, err)
		assert.Equal(t, radseek.EINVALID, radseek.ErrorCode(err))
	})
}

func TestEngine_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns matching file with score and snippet", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		writeFile(t, filepath.Join(config.Root, "a", "b.txt"), []byte("signal strength was high today"))
		writeFile(t, filepath.Join(config.Root, "c.dat"), []byte("no data here"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "signal strength")
		require.NoError(t, err)

		require.Len(t, summary.Results, 1)
		result := summary.Results[0]
		assert.Equal(t, filepath.Join(config.Root, "a", "b.txt"), result.Path)
		assert.Equal(t, 2, result.Score)
		assert.Contains(t, result.Snippet.Text, "signal strength was high")
		assert.Equal(t, 2, summary.Searched)
	})

	t.Run("empty query returns empty result without walking", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		walked := false
		walker := &mock.Walker{
			WalkFn: func(ctx context.Context) ([]radseek.CandidateFile, error) {
				walked = true
				return nil, nil
			},
		}

		engine, err := search.NewEngine(config, walker, fs.NewDecoder(0))
		require.NoError(t, err)

		for _, query := range []string{"", "   ", "\t\n"} {
			summary, err := engine.Search(context.Background(), query)
			require.NoError(t, err)
			assert.Empty(t, summary.Results)
		}
		assert.False(t, walked, "empty query must not trigger a walk")
	})

	t.Run("undecodable files are silently excluded", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		// .bin is not searched by default; use an allowed extension with
		// invalid bytes so the decoder has to classify it.
		writeFile(t, filepath.Join(config.Root, "x.dat"), []byte{0xff, 0xfe, 0xfd})
		writeFile(t, filepath.Join(config.Root, "ok.txt"), []byte("radar contact confirmed"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "contact")
		require.NoError(t, err)

		require.Len(t, summary.Results, 1)
		assert.Equal(t, filepath.Join(config.Root, "ok.txt"), summary.Results[0].Path)
		assert.Equal(t, 1, summary.Searched)
		assert.Equal(t, 1, summary.Skipped)
	})

	t.Run("files beyond max depth are never returned", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		dir := config.Root
		for i := 0; i < 11; i++ {
			dir = filepath.Join(dir, "level")
		}
		writeFile(t, filepath.Join(dir, "buried.txt"), []byte("keyword"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "keyword")
		require.NoError(t, err)
		assert.Empty(t, summary.Results)
	})

	t.Run("files with zero score are not emitted", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		writeFile(t, filepath.Join(config.Root, "hit.txt"), []byte("sweep complete"))
		writeFile(t, filepath.Join(config.Root, "miss.txt"), []byte("nothing relevant"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "sweep")
		require.NoError(t, err)

		require.Len(t, summary.Results, 1)
		assert.Equal(t, filepath.Join(config.Root, "hit.txt"), summary.Results[0].Path)
	})

	t.Run("ranks by score with path tie-break and truncates to top-N", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		config.TopN = 2
		writeFile(t, filepath.Join(config.Root, "twice.txt"), []byte("echo echo"))
		writeFile(t, filepath.Join(config.Root, "b.txt"), []byte("echo"))
		writeFile(t, filepath.Join(config.Root, "a.txt"), []byte("echo"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "echo")
		require.NoError(t, err)

		require.Len(t, summary.Results, 2)
		assert.Equal(t, filepath.Join(config.Root, "twice.txt"), summary.Results[0].Path)
		assert.Equal(t, 2, summary.Results[0].Score)
		assert.Equal(t, filepath.Join(config.Root, "a.txt"), summary.Results[1].Path)
	})

	t.Run("duplicate content is scored once", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		writeFile(t, filepath.Join(config.Root, "orig.txt"), []byte("contact bearing 270"))
		writeFile(t, filepath.Join(config.Root, "z_copy.txt"), []byte("contact bearing 270"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "contact")
		require.NoError(t, err)

		require.Len(t, summary.Results, 1)
		assert.Equal(t, filepath.Join(config.Root, "orig.txt"), summary.Results[0].Path)
		assert.Equal(t, 1, summary.Skipped)
	})

	t.Run("keep-duplicates returns every path", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		config.KeepDuplicates = true
		writeFile(t, filepath.Join(config.Root, "orig.txt"), []byte("contact bearing 270"))
		writeFile(t, filepath.Join(config.Root, "z_copy.txt"), []byte("contact bearing 270"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "contact")
		require.NoError(t, err)
		assert.Len(t, summary.Results, 2)
	})

	t.Run("max files caps how many candidates are decoded", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		config.MaxFiles = 1
		writeFile(t, filepath.Join(config.Root, "a.txt"), []byte("ping"))
		writeFile(t, filepath.Join(config.Root, "b.txt"), []byte("ping"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "ping")
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Searched)
		assert.Len(t, summary.Results, 1)
	})

	t.Run("snippet centers on the first match offset", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		config.SnippetWindow = 30
		padding := make([]byte, 0, 220)
		for i := 0; i < 20; i++ {
			padding = append(padding, []byte("filler air ")...)
		}
		content := append(padding, []byte("doppler shift observed")...)
		writeFile(t, filepath.Join(config.Root, "sweep.log"), content)

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "doppler")
		require.NoError(t, err)

		require.Len(t, summary.Results, 1)
		sn := summary.Results[0].Snippet
		assert.Contains(t, sn.Text, "doppler")
		assert.LessOrEqual(t, len(sn.Text), 30)
		assert.Equal(t, len(padding), sn.MatchOffset)
	})

	t.Run("walker failure surfaces as the query error", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		walker := &mock.Walker{
			WalkFn: func(ctx context.Context) ([]radseek.CandidateFile, error) {
				return nil, radseek.Errorf(radseek.EINTERNAL, "walk failed")
			},
		}

		engine, err := search.NewEngine(config, walker, fs.NewDecoder(0))
		require.NoError(t, err)

		_, err = engine.Search(context.Background(), "anything")
		require.Error(t, err)
		assert.Equal(t, radseek.EINTERNAL, radseek.ErrorCode(err))
	})

	t.Run("one undecodable file never aborts the rest of the corpus", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		candidates := []radseek.CandidateFile{
			{Path: "bad.txt"}, {Path: "good.txt"},
		}
		walker := &mock.Walker{
			WalkFn: func(ctx context.Context) ([]radseek.CandidateFile, error) {
				return candidates, nil
			},
		}
		decoder := &mock.Decoder{
			DecodeFn: func(ctx context.Context, file radseek.CandidateFile) (*radseek.Document, error) {
				if file.Path == "bad.txt" {
					return nil, radseek.Errorf(radseek.EUNDECODABLE, "%s: binary or invalid encoding", file.Path)
				}
				return &radseek.Document{Path: file.Path, Content: "target lock", ContentHash: 7}, nil
			},
		}

		engine, err := search.NewEngine(config, walker, decoder)
		require.NoError(t, err)

		summary, err := engine.Search(context.Background(), "target")
		require.NoError(t, err)

		require.Len(t, summary.Results, 1)
		assert.Equal(t, "good.txt", summary.Results[0].Path)
		assert.Equal(t, 1, summary.Skipped)
	})

	t.Run("output is identical at any concurrency", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		for _, f := range []struct{ name, body string }{
			{"a/one.txt", "pulse pulse pulse"},
			{"a/two.txt", "pulse"},
			{"b/three.log", "pulse pulse"},
			{"b/four.dat", "quiet"},
			{"five.txt", "pulse train detected"},
		} {
			writeFile(t, filepath.Join(root, f.name), []byte(f.body))
		}

		run := func(concurrency int) *radseek.Summary {
			config := radseek.DefaultConfig()
			config.Root = root
			config.Concurrency = concurrency
			engine := newTestEngine(t, config)
			summary, err := engine.Search(context.Background(), "pulse")
			require.NoError(t, err)
			summary.Duration = 0
			return summary
		}

		sequential := run(1)
		for _, c := range []int{2, 4, 8} {
			assert.Equal(t, sequential, run(c), "concurrency %d changed output", c)
		}
	})

	t.Run("read throttle does not change results", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		config.ReadsPerSecond = 1000
		writeFile(t, filepath.Join(config.Root, "a.txt"), []byte("blip"))
		writeFile(t, filepath.Join(config.Root, "b.txt"), []byte("blip blip"))

		engine := newTestEngine(t, config)

		summary, err := engine.Search(context.Background(), "blip")
		require.NoError(t, err)
		require.Len(t, summary.Results, 2)
		assert.Equal(t, filepath.Join(config.Root, "b.txt"), summary.Results[0].Path)
	})

	t.Run("no state survives a query", func(t *testing.T) {
		t.Parallel()

		config := corpusConfig(t)
		path := filepath.Join(config.Root, "live.txt")
		writeFile(t, path, []byte("azimuth 090"))

		engine := newTestEngine(t, config)
		ctx := context.Background()

		first, err := engine.Search(ctx, "azimuth")
		require.NoError(t, err)
		require.Len(t, first.Results, 1)

		// The corpus changes between queries; the next query must see the
		// new state because nothing is cached.
		writeFile(t, path, []byte("nothing to see"))

		second, err := engine.Search(ctx, "azimuth")
		require.NoError(t, err)
		assert.Empty(t, second.Results)
	})
}
