package theme

// Palette holds the raw colors of a named theme as hex digits without the
// leading '#'. Bg may also be a gradient in "angle,hex,hex[,hex...]" form.
// Empty fields fall back to the default theme.
type Palette struct {
	Title  string
	Icon   string
	Text   string
	Bg     string
	Border string
}

// themes is the built-in theme table. It is never mutated after init.
var themes = map[string]Palette{
	"default":              {Title: "2f80ed", Icon: "4c71f2", Text: "434d58", Bg: "fffefe", Border: "e4e2e2"},
	"dark":                 {Title: "fff", Icon: "79ff97", Text: "9f9f9f", Bg: "151515"},
	"radical":              {Title: "fe428e", Icon: "f8d847", Text: "a9fef7", Bg: "141321"},
	"merko":                {Title: "abd200", Icon: "b7d364", Text: "68b587", Bg: "0a0f0b"},
	"gruvbox":              {Title: "fabd2f", Icon: "fe8019", Text: "8ec07c", Bg: "282828"},
	"gruvbox_light":        {Title: "b57614", Icon: "af3a03", Text: "427b58", Bg: "fbf1c7"},
	"tokyonight":           {Title: "70a5fd", Icon: "bf91f3", Text: "38bdae", Bg: "1a1b27"},
	"onedark":              {Title: "e4bf7a", Icon: "8eb573", Text: "df6d74", Bg: "282c34"},
	"cobalt":               {Title: "e683d9", Icon: "0480ef", Text: "75eeb2", Bg: "193549"},
	"synthwave":            {Title: "e2e9ec", Icon: "ef8539", Text: "e5289e", Bg: "2b213a"},
	"highcontrast":         {Title: "e7f216", Icon: "00ffff", Text: "fff", Bg: "000"},
	"dracula":              {Title: "ff6e96", Icon: "79dafa", Text: "f8f8f2", Bg: "282a36"},
	"prussian":             {Title: "bddfff", Icon: "38a0ff", Text: "6e93b5", Bg: "172f45"},
	"monokai":              {Title: "eb1f6a", Icon: "e28905", Text: "f1f1eb", Bg: "272822"},
	"vue":                  {Title: "41b883", Icon: "41b883", Text: "273849", Bg: "fffefe"},
	"vue-dark":             {Title: "41b883", Icon: "41b883", Text: "fffefe", Bg: "273849"},
	"shades-of-purple":     {Title: "fad000", Icon: "b362ff", Text: "a599e9", Bg: "2d2b55"},
	"nightowl":             {Title: "c792ea", Icon: "ffeb95", Text: "7fdbca", Bg: "011627"},
	"buefy":                {Title: "7957d5", Icon: "ff3860", Text: "363636", Bg: "ffffff"},
	"blue-green":           {Title: "2f97c1", Icon: "f5b700", Text: "0cf574", Bg: "040f0f"},
	"algolia":              {Title: "00AEFF", Icon: "2DDE98", Text: "FFFFFF", Bg: "050F2C"},
	"great-gatsby":         {Title: "ffa726", Icon: "ffb74d", Text: "ffd95b", Bg: "000000"},
	"darcula":              {Title: "BA5F17", Icon: "84628F", Text: "BEBEBE", Bg: "242424"},
	"bear":                 {Title: "e03c8a", Icon: "00AEFF", Text: "bcb28d", Bg: "1f2023"},
	"solarized-dark":       {Title: "268bd2", Icon: "b58900", Text: "859900", Bg: "002b36"},
	"solarized-light":      {Title: "268bd2", Icon: "b58900", Text: "859900", Bg: "fdf6e3"},
	"chartreuse-dark":      {Title: "7fff00", Icon: "00AEFF", Text: "fff", Bg: "000"},
	"nord":                 {Title: "81a1c1", Icon: "88c0d0", Text: "d8dee9", Bg: "2e3440"},
	"gotham":               {Title: "2aa889", Icon: "599cab", Text: "99d1ce", Bg: "0c1014"},
	"material-palenight":   {Title: "c792ea", Icon: "89ddff", Text: "a6accd", Bg: "292d3e"},
	"graywhite":            {Title: "24292e", Icon: "24292e", Text: "24292e", Bg: "ffffff"},
	"vision-friendly-dark": {Title: "ffb000", Icon: "785ef0", Text: "ffffff", Bg: "000000"},
	"ayu-mirage":           {Title: "f4cd7c", Icon: "73d0ff", Text: "c7c8c2", Bg: "1f2430"},
	"midnight-purple":      {Title: "9745f5", Icon: "9f4bff", Text: "ffffff", Bg: "000000"},
	"calm":                 {Title: "e07a5f", Icon: "edae49", Text: "ebcfb2", Bg: "373f51"},
	"flag-india":           {Title: "ff8f1c", Icon: "250E62", Text: "509E2F", Bg: "ffffff"},
	"omni":                 {Title: "FF79C6", Icon: "e7de79", Text: "E1E1E6", Bg: "191622"},
	"react":                {Title: "61dafb", Icon: "61dafb", Text: "ffffff", Bg: "20232a"},
	"jolly":                {Title: "ff64da", Icon: "a960ff", Text: "ffffff", Bg: "291B3E"},
	"maroongold":           {Title: "F7EF8A", Icon: "F7EF8A", Text: "E0AA3E", Bg: "260000"},
	"yeblu":                {Title: "ffff00", Icon: "ffff00", Text: "ffffff", Bg: "002046"},
	"blueberry":            {Title: "82aaff", Icon: "89ddff", Text: "27e8a7", Bg: "242938"},
	"slateorange":          {Title: "faa627", Icon: "faa627", Text: "ffffff", Bg: "36393f"},
	"kacho_ga":             {Title: "bf4a3f", Icon: "a64833", Text: "d9c8a9", Bg: "402b23"},
	"outrun":               {Title: "ffcc00", Icon: "ff1aff", Text: "8080ff", Bg: "141439"},
	"ocean_dark":           {Title: "8957B2", Icon: "FFFFFF", Text: "92D534", Bg: "151A28"},
	"city_lights":          {Title: "5D8CB3", Icon: "4798FF", Text: "718CA1", Bg: "1D252C"},
	"github_dark":          {Title: "58A6FF", Icon: "1F6FEB", Text: "C3D1D9", Bg: "0D1117"},
	"github_dark_dimmed":   {Title: "539bf5", Icon: "539bf5", Text: "ADBAC7", Bg: "24292F", Border: "373E47"},
	"discord_old_blurple":  {Title: "7289DA", Icon: "7289DA", Text: "FFFFFF", Bg: "2C2F33"},
	"aura_dark":            {Title: "ff7372", Icon: "6cffd0", Text: "dbdbdb", Bg: "252334"},
	"panda":                {Title: "19f9d899", Icon: "19f9d899", Text: "FF75B5", Bg: "31353a"},
	"noctis_minimus":       {Title: "d3b692", Icon: "72b7c0", Text: "c5cdd3", Bg: "1b2932"},
	"cobalt2":              {Title: "ffc600", Icon: "ffffff", Text: "0088ff", Bg: "193549"},
	"swift":                {Title: "000000", Icon: "f05237", Text: "000000", Bg: "f7f7f7"},
	"aura":                 {Title: "a277ff", Icon: "ffca85", Text: "61ffca", Bg: "15141b"},
	"apprentice":           {Title: "ffffff", Icon: "ffffaf", Text: "bcbcbc", Bg: "262626"},
	"moltack":              {Title: "86092C", Icon: "86092C", Text: "574038", Bg: "F5E1C0"},
	"codeSTACKr":           {Title: "ff652f", Icon: "FFE400", Text: "ffffff", Bg: "09131B", Border: "0c1a25"},
	"rose_pine":            {Title: "9ccfd8", Icon: "ebbcba", Text: "e0def4", Bg: "191724"},
	"catppuccin_latte":     {Title: "137980", Icon: "8839ef", Text: "4c4f69", Bg: "eff1f5"},
	"catppuccin_mocha":     {Title: "94e2d5", Icon: "cba6f7", Text: "cdd6f4", Bg: "1e1e2e"},
	"date_night":           {Title: "DA7885", Icon: "BB8470", Text: "E1B2A2", Bg: "170F0C", Border: "170F0C"},
	"one_dark_pro":         {Title: "61AFEF", Icon: "C678DD", Text: "E5C06E", Bg: "23272E", Border: "3B4048"},
	"rose":                 {Title: "8d192b", Icon: "B71F36", Text: "862931", Bg: "e9d8d4", Border: "e9d8d4"},
	"holi":                 {Title: "5FABEE", Icon: "5FABEE", Text: "D6E7FF", Bg: "030314", Border: "85A4C0"},
	"neon":                 {Title: "00EAD3", Icon: "00EAD3", Text: "FF449F", Bg: "000000", Border: "ffffff"},
	"blue_navy":            {Title: "82AAFF", Icon: "82AAFF", Text: "82AAFF", Bg: "000000", Border: "ffffff"},
	"calm_pink":            {Title: "e07a5f", Icon: "ebcfb2", Text: "edae49", Bg: "2b2d40", Border: "e1bc29"},
	"ambient_gradient":     {Title: "ffffff", Icon: "ffffff", Text: "ffffff", Bg: "35,4158d0,c850c0,ffcc70"},
	"transparent":          {Title: "006AFF", Icon: "0579C3", Text: "417E87", Bg: "ffffff00"},
	"shadow_red":           {Title: "9A0000", Icon: "4F0000", Text: "444", Bg: "ffffff00", Border: "4F0000"},
	"shadow_green":         {Title: "007A00", Icon: "003D00", Text: "444", Bg: "ffffff00", Border: "003D00"},
	"shadow_blue":          {Title: "00779A", Icon: "004450", Text: "444", Bg: "ffffff00", Border: "004490"},
	"default_repocard":     {Title: "2f80ed", Icon: "586069", Text: "434d58", Bg: "fffefe"},
}
