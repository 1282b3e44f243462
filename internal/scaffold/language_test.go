package scaffold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		token string
		want  Language
	}{
		{"", LanguageJava},
		{"java", LanguageJava},
		{"JAVA", LanguageJava},
		{"Groovy", LanguageGroovy},
		{"both", LanguageBoth},
		{" Both ", LanguageBoth},
	}

	for _, tc := range cases {
		got, err := ParseLanguage(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		require.Equal(t, tc.want, got, "token %q", tc.token)
	}
}

func TestParseLanguageRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"kotlin", "scala", "javascript", "jav a"} {
		_, err := ParseLanguage(token)
		require.ErrorIs(t, err, ErrInvalidLanguage, "token %q", token)
	}
}

func TestLanguageIncludes(t *testing.T) {
	require.True(t, LanguageJava.IncludesJava())
	require.False(t, LanguageJava.IncludesGroovy())

	require.False(t, LanguageGroovy.IncludesJava())
	require.True(t, LanguageGroovy.IncludesGroovy())

	require.True(t, LanguageBoth.IncludesJava())
	require.True(t, LanguageBoth.IncludesGroovy())
}
