package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"analyze", "rank-repos", "match-skills", "serve"} {
		assert.True(t, names[expected], "command %q should be registered", expected)
	}
}

func TestRunAnalyze_MissingInput(t *testing.T) {
	analyzeURL = ""
	analyzeTextFile = ""
	analyzeConfig = ""

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --url or --text-file")
}

func TestRunRankRepos_MissingInput(t *testing.T) {
	rankJobURL = ""
	rankTextFile = ""

	err := runRankRepos(rankReposCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --url or --text-file")
}

func TestLoadResumeSkills(t *testing.T) {
	resumeFile := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(resumeFile, []byte(`{"skills": ["Python", "Docker"]}`), 0o644))

	tests := []struct {
		name     string
		skills   []string
		file     string
		expected []string
		wantErr  bool
	}{
		{
			name:     "flag skills only",
			skills:   []string{"React", "Node.js"},
			expected: []string{"React", "Node.js"},
		},
		{
			name:     "resume file only",
			file:     resumeFile,
			expected: []string{"Python", "Docker"},
		},
		{
			name:     "file and flag skills combine",
			skills:   []string{"React"},
			file:     resumeFile,
			expected: []string{"Python", "Docker", "React"},
		},
		{
			name:    "neither source provided",
			wantErr: true,
		},
		{
			name:    "missing file",
			file:    filepath.Join(t.TempDir(), "absent.json"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matchResumeSkills = tt.skills
			matchResumeFile = tt.file

			skills, err := loadResumeSkills()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, skills)
		})
	}
}
