package table_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/Lostpig/chinese-numerals/table"
)

func TestValidate(t *testing.T) {
	require.NoError(t, table.Simplified.Validate())
	require.NoError(t, table.Traditional.Validate())

	var nilTable *table.Table
	err := nilTable.Validate()
	require.Error(t, err)
	require.True(t, table.Error.Has(err))

	empty := *table.Simplified
	empty.Scales = nil
	err = empty.Validate()
	require.Error(t, err)
	require.True(t, table.Error.Has(err))
}

func TestUnit(t *testing.T) {
	require.Equal(t, "", table.Simplified.Unit(0))
	require.Equal(t, "十", table.Simplified.Unit(1))
	require.Equal(t, "百", table.Simplified.Unit(2))
	require.Equal(t, "千", table.Simplified.Unit(3))
	require.Equal(t, "仟", table.Traditional.Unit(3))
}

func TestParse(t *testing.T) {
	type TC struct {
		name   string
		format table.Format
		data   string
		table  *table.Table
		err    bool
		Mark   error
	}

	custom := *table.Simplified
	custom.Digits = [10]string{"〇", "一", "两", "三", "四", "五", "六", "七", "八", "九"}
	custom.Scales = []string{"万", "亿"}

	traditionalPoint := *table.Traditional
	traditionalPoint.Point = "."

	tcs := []TC{
		{
			name:   "yaml base override",
			format: table.YAML,
			data: `
base: simplified
digits: [〇, 一, 两, 三, 四, 五, 六, 七, 八, 九]
scales: [万, 亿]
`,
			table: &custom,
			Mark:  oops.New("unexpected"),
		},
		{
			name:   "json base override",
			format: table.JSON,
			data:   `{"base": "traditional", "point": "."}`,
			table:  &traditionalPoint,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "yaml complete",
			format: table.YAML,
			data: `
digits: [零, 壹, 貳, 叁, 肆, 伍, 陸, 柒, 捌, 玖]
units: [拾, 佰, 仟]
scales: [萬, 億, 兆, 京, 垓, 秭, 穰, 溝, 澗, 正, 載]
point: 點
negative: 負
`,
			table: table.Traditional,
			Mark:  oops.New("unexpected"),
		},
		{
			name:   "short digits",
			format: table.YAML,
			data:   `{base: simplified, digits: [a, b, c]}`,
			err:    true,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "long units",
			format: table.JSON,
			data:   `{"base": "simplified", "units": ["a", "b", "c", "d"]}`,
			err:    true,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "empty scales",
			format: table.JSON,
			data:   `{"base": "simplified", "scales": []}`,
			err:    true,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "missing point without base",
			format: table.YAML,
			data: `
digits: [零, 一, 二, 三, 四, 五, 六, 七, 八, 九]
units: [十, 百, 千]
scales: [万]
negative: 负
`,
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			name:   "unknown base",
			format: table.YAML,
			data:   `base: klingon`,
			err:    true,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "malformed json",
			format: table.JSON,
			data:   `{"base": `,
			err:    true,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "unknown format",
			format: table.Format("toml"),
			data:   `base = "simplified"`,
			err:    true,
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			tbl, err := table.Parse([]byte(tc.data), tc.format)
			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, table.Error.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.table, tbl, tc.Mark)
		})
	}
}

func TestParseDoesNotShareBase(t *testing.T) {
	tbl, err := table.Parse([]byte(`base: simplified`), table.YAML)
	require.NoError(t, err)
	require.Equal(t, table.Simplified, tbl)

	tbl.Scales[0] = "x"
	require.Equal(t, "万", table.Simplified.Scales[0])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "radio.yml")
	err := os.WriteFile(path, []byte("base: simplified\ndigits: [洞, 幺, 两, 三, 四, 五, 六, 拐, 八, 九]\n"), 0o644)
	require.NoError(t, err)

	tbl, err := table.Load(path)
	require.NoError(t, err)
	require.Equal(t, "洞", tbl.Digits[0])
	require.Equal(t, "拐", tbl.Digits[7])
	require.Equal(t, table.Simplified.Units, tbl.Units)

	_, err = table.Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	require.True(t, table.Error.Has(err))

	_, err = table.Load(filepath.Join(dir, "table.txt"))
	require.Error(t, err)
	require.True(t, table.Error.Has(err))
}
