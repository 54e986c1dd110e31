package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, "console", c.LogConf.Format)
	assert.Equal(t, "info", c.LogConf.Level)
	assert.Equal(t, ",", c.DisplayConf.ThousandsSep)
	assert.Equal(t, 9, c.DisplayConf.MaxFractionDigits)
	assert.True(t, c.DisplayConf.TrimTrailingZeros)
}

func TestParse_Full(t *testing.T) {
	yaml := `
logger:
  format: json
  log_dir: /var/log/frt
  level: debug
  compress: true
display:
  thousands_sep: "_"
  max_fraction_digits: 4
  trim_trailing_zeros: false
`
	c, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "json", c.LogConf.Format)
	assert.Equal(t, "/var/log/frt", c.LogConf.LogDir)
	assert.Equal(t, "debug", c.LogConf.Level)
	assert.True(t, c.LogConf.Compress)
	assert.Equal(t, "_", c.DisplayConf.ThousandsSep)
	assert.Equal(t, 4, c.DisplayConf.MaxFractionDigits)
	assert.False(t, c.DisplayConf.TrimTrailingZeros)

	opt := c.LogConf.ToLogOption()
	assert.Equal(t, "json", opt.Format)
	assert.Equal(t, "/var/log/frt", opt.LogDir)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("logger:\n  format: xml\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("display:\n  max_fraction_digits: 99\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("logger: ["))
	assert.Error(t, err)
}
