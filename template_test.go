package ferrox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdppathak/ferrox"
)

func TestCompileTemplate(t *testing.T) {
	t.Parallel()

	t.Run("compiles_static_template", func(t *testing.T) {
		t.Parallel()

		compiled, err := ferrox.CompileTemplate("/users/new")
		require.NoError(t, err)
		assert.Equal(t, "/users/new", compiled.String())
		assert.Equal(t, 2, compiled.Specificity())
	})

	t.Run("compiles_params", func(t *testing.T) {
		t.Parallel()

		compiled, err := ferrox.CompileTemplate("/users/:id/posts/:post_id")
		require.NoError(t, err)
		assert.Equal(t, 2, compiled.Specificity())

		params, ok := compiled.Match("/users/42/posts/7")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": "42", "post_id": "7"}, params)
	})

	t.Run("root_compiles_to_zero_segments", func(t *testing.T) {
		t.Parallel()

		compiled, err := ferrox.CompileTemplate("/")
		require.NoError(t, err)
		assert.Equal(t, 0, compiled.Specificity())

		_, ok := compiled.Match("/")
		assert.True(t, ok)
		_, ok = compiled.Match("/users")
		assert.False(t, ok)
	})

	t.Run("trailing_slash_is_discarded", func(t *testing.T) {
		t.Parallel()

		compiled, err := ferrox.CompileTemplate("/users/")
		require.NoError(t, err)

		_, ok := compiled.Match("/users")
		assert.True(t, ok)
	})

	t.Run("fails_on_empty_param_name", func(t *testing.T) {
		t.Parallel()

		_, err := ferrox.CompileTemplate("/users/:")
		require.Error(t, err)
		assert.ErrorIs(t, err, ferrox.ErrInvalidTemplate)
	})

	t.Run("fails_on_duplicate_param_name", func(t *testing.T) {
		t.Parallel()

		_, err := ferrox.CompileTemplate("/users/:id/friends/:id")
		require.Error(t, err)
		assert.ErrorIs(t, err, ferrox.ErrDuplicateParam)
		assert.ErrorIs(t, err, ferrox.ErrInvalidTemplate)
	})
}

func TestCompiledTemplate_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		path     string
		ok       bool
		params   map[string]string
	}{
		{name: "exact_static", template: "/users/new", path: "/users/new", ok: true},
		{name: "static_is_case_sensitive", template: "/users/new", path: "/Users/new", ok: false},
		{name: "param_binds_segment", template: "/users/:id", path: "/users/42", ok: true, params: map[string]string{"id": "42"}},
		{name: "param_binds_verbatim", template: "/users/:id", path: "/users/John%20Doe", ok: true, params: map[string]string{"id": "John%20Doe"}},
		{name: "too_few_segments", template: "/users/:id", path: "/users", ok: false},
		{name: "too_many_segments", template: "/users/:id", path: "/users/42/posts", ok: false},
		{name: "param_rejects_empty_segment", template: "/users/:id/posts", path: "/users//posts", ok: false},
		{name: "no_partial_segment_match", template: "/users", path: "/user", ok: false},
		{name: "trailing_slash_on_path", template: "/users/:id", path: "/users/42/", ok: true, params: map[string]string{"id": "42"}},
		{name: "mixed_static_and_param", template: "/api/v1/:resource/list", path: "/api/v1/users/list", ok: true, params: map[string]string{"resource": "users"}},
		{name: "static_mismatch_after_param", template: "/api/:version/users", path: "/api/v2/posts", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			compiled, err := ferrox.CompileTemplate(tt.template)
			require.NoError(t, err)

			params, ok := compiled.Match(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok && tt.params != nil {
				assert.Equal(t, tt.params, params)
			}
		})
	}
}
