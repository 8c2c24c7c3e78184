package fm_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entcone/fm"
	"github.com/katalvlaran/entcone/shannon"
)

func TestStatusLogger_ReportsDriverProgress(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	sys, err := shannon.Elemental(2)
	require.NoError(t, err)
	opts := &fm.Options{Observer: fm.NewStatusLogger(logger)}
	_, err = fm.SolveTo(sys, 2, opts)
	require.NoError(t, err)
	require.NoError(t, fm.Minimize(sys, opts))

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	require.Contains(t, messages, "eliminate")
	require.Contains(t, messages, "step")
	require.Contains(t, messages, "pairwise phase")
	require.Contains(t, messages, "minimize")
}

func TestStatusLogger_NilUsesStandardLogger(t *testing.T) {
	require.NotNil(t, fm.NewStatusLogger(nil))
}
