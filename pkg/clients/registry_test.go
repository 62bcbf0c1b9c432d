package clients

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, defs ...Definition) *Registry {
	t.Helper()
	reg := NewRegistry(Options{})
	require.NoError(t, RegisterAll(reg, defs))
	return reg
}

func TestClientReturnsSameTransportForSameName(t *testing.T) {
	reg := newTestRegistry(t, Definition{Name: "dog", BaseURL: "http://example-dog-api.test"})

	first, err := reg.Client("dog")
	require.NoError(t, err)
	second, err := reg.Client("DOG")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first.Transport(), second.Transport())
}

func TestClientReturnsDistinctHandlesPerName(t *testing.T) {
	reg := newTestRegistry(t,
		Definition{Name: "gh", BaseURL: "https://api.example.test", Headers: map[string]string{"Accept": "application/json"}},
		Definition{Name: "dog", BaseURL: "http://example-dog-api.test", Headers: map[string]string{"User-Agent": "X"}},
	)

	gh, err := reg.Client("gh")
	require.NoError(t, err)
	dog, err := reg.Client("dog")
	require.NoError(t, err)

	assert.NotSame(t, gh, dog)
	assert.NotSame(t, gh.Transport(), dog.Transport())
	assert.Equal(t, "https://api.example.test", gh.BaseURL())
	assert.Equal(t, "http://example-dog-api.test", dog.BaseURL())
	assert.Equal(t, map[string]string{"Accept": "application/json"}, gh.Headers())
	assert.Equal(t, map[string]string{"User-Agent": "X"}, dog.Headers())
	assert.Equal(t, "application/json", gh.Transport().Header.Get("Accept"))
}

func TestClientUnknownNameFails(t *testing.T) {
	reg := newTestRegistry(t, Definition{Name: "dog"})

	h, err := reg.Client("cat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrClientNotFound))
	assert.Nil(t, h)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := newTestRegistry(t, Definition{Name: "dog"})

	err := reg.Register(Definition{Name: " Dog ", BaseURL: "https://other.test"})
	require.ErrorIs(t, err, ErrDuplicateClient)

	def, ok := reg.Definition("dog")
	require.True(t, ok)
	assert.Empty(t, def.BaseURL)
}

func TestRegisterValidatesDefinition(t *testing.T) {
	reg := NewRegistry(Options{})

	for name, def := range map[string]Definition{
		"empty name":      {Name: "  "},
		"bad name":        {Name: "dog api"},
		"relative base":   {Name: "dog", BaseURL: "/api"},
		"non-http scheme": {Name: "dog", BaseURL: "ftp://dog.test"},
		"missing host":    {Name: "dog", BaseURL: "https://"},
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, reg.Register(def), ErrInvalidDefinition)
		})
	}
	assert.Empty(t, reg.Names())
}

func TestRegisterCopiesHeaders(t *testing.T) {
	headers := map[string]string{"User-Agent": "X", "Empty": " "}
	reg := newTestRegistry(t, Definition{Name: "dog", Headers: headers})
	headers["User-Agent"] = "mutated"

	h, err := reg.Client("dog")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"User-Agent": "X"}, h.Headers())

	got := h.Headers()
	got["User-Agent"] = "mutated"
	assert.Equal(t, "X", h.Headers()["User-Agent"])
}

func TestNamesPreservesRegistrationOrder(t *testing.T) {
	reg := newTestRegistry(t, DefaultDefinitions("")...)
	assert.Equal(t, []Name{GitHubAPI, Basic, DogAPI}, reg.Names())
}

func TestClientConcurrentFirstUseBuildsOnce(t *testing.T) {
	reg := newTestRegistry(t, Definition{Name: "dog"})

	var wg sync.WaitGroup
	handles := make([]*Handle, 16)
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := reg.Client("dog")
			if err == nil {
				handles[i] = h
			}
		}(i)
	}
	wg.Wait()

	for i, h := range handles {
		require.NotNil(t, h, fmt.Sprintf("handle %d", i))
		assert.Same(t, handles[0], h)
	}
}

func TestHandleURL(t *testing.T) {
	reg := newTestRegistry(t,
		Definition{Name: "dog", BaseURL: "https://dog.ceo/"},
		Definition{Name: "basic"},
	)
	dog, err := reg.Client("dog")
	require.NoError(t, err)
	basic, err := reg.Client("basic")
	require.NoError(t, err)

	assert.Equal(t, "https://dog.ceo/api/breeds/image/random", dog.URL("/api/breeds/image/random"))
	assert.Equal(t, "https://dog.ceo/api", dog.URL("api"))
	assert.Equal(t, "http://yahoo.com", dog.URL("http://yahoo.com"))
	assert.Equal(t, "http://yahoo.com", basic.URL("http://yahoo.com"))
}
