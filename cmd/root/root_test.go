package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/split-ledger/internal/config"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "split-ledger", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.PersistentPreRun)
}

func TestInit_RegistersFileFlag(t *testing.T) {
	Init()

	flag := Cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
}

func TestDataFile_FlagWinsOverConfig(t *testing.T) {
	oldFlag, oldCfg := DataFileFlag, AppConfig
	defer func() { DataFileFlag, AppConfig = oldFlag, oldCfg }()

	cfg := &config.Config{}
	cfg.Data.File = "from-config.json"
	AppConfig = cfg

	DataFileFlag = ""
	assert.Equal(t, "from-config.json", DataFile())

	DataFileFlag = "from-flag.json"
	assert.Equal(t, "from-flag.json", DataFile())
}

func TestCurrency(t *testing.T) {
	oldCfg := AppConfig
	defer func() { AppConfig = oldCfg }()

	AppConfig = nil
	assert.Equal(t, "", Currency())

	cfg := &config.Config{}
	cfg.Display.Currency = "CHF"
	AppConfig = cfg
	assert.Equal(t, "CHF", Currency())
}
