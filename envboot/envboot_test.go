package envboot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestNeedsBootstrapWhenVariableUnset(t *testing.T) {
	wanted := map[string]string{"SENSORKIT_DEVICES": "d435:D400"}

	assert.True(t, NeedsBootstrap(fakeEnv(nil), wanted))
	assert.True(t, NeedsBootstrap(fakeEnv(map[string]string{"OTHER": "x"}), wanted))
}

func TestNoBootstrapWhenVariablesPresent(t *testing.T) {
	wanted := map[string]string{"SENSORKIT_DEVICES": "d435:D400"}

	assert.False(t, NeedsBootstrap(fakeEnv(map[string]string{"SENSORKIT_DEVICES": "l515:L500"}), wanted))
}

func TestNoBootstrapInChildRun(t *testing.T) {
	wanted := map[string]string{"SENSORKIT_DEVICES": "d435:D400"}
	env := map[string]string{markerVar: "1"}

	assert.False(t, NeedsBootstrap(fakeEnv(env), wanted),
		"the marked child must never re-run again, even with variables missing")
}

func TestBuildCommandInjectsEnvironment(t *testing.T) {
	cmd, _ := BuildCommand("/usr/local/bin/run-tests", []string{"-debug"},
		[]string{"HOME=/home/u"}, map[string]string{"SENSORKIT_DEVICES": "d435:D400"})

	require.Equal(t, []string{"/usr/local/bin/run-tests", "-debug"}, cmd.Args)
	assert.Contains(t, cmd.Env, "HOME=/home/u")
	assert.Contains(t, cmd.Env, "SENSORKIT_DEVICES=d435:D400")
	assert.Contains(t, cmd.Env, markerVar+"=1")
}

func TestBuildCommandQuotesEchoedCommandLine(t *testing.T) {
	_, quoted := BuildCommand("/opt/test tools/run", []string{"-run", "depth stream"}, nil, nil)

	assert.Equal(t, `'/opt/test tools/run' -run 'depth stream'`, quoted)
}
