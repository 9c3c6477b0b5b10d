package collections_test

import (
	"strings"
	"testing"

	"github.com/alkime/devdiary/pkg/collections"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		tokens := []string{"[連番]", "[テーマ名]", "[プロジェクト名]"}
		trimmed := collections.Apply(tokens, func(s string) string {
			return strings.Trim(s, "[]")
		})

		require.Equal(t, []string{"連番", "テーマ名", "プロジェクト名"}, trimmed)
	})

	t.Run("changes type", func(t *testing.T) {
		type rule struct {
			Name string
		}

		rules := []rule{{Name: "model"}, {Name: "theme"}}
		names := collections.Apply(rules, func(r rule) string {
			return r.Name
		})

		require.Equal(t, []string{"model", "theme"}, names)
	})

	t.Run("empty input", func(t *testing.T) {
		out := collections.Apply([]int(nil), func(i int) int { return i })

		require.Empty(t, out)
		require.NotNil(t, out)
	})
}
