package cli

import (
	"os"
	"strings"

	"crafto-editor/savedir"
	"crafto-editor/ui"
	"github.com/alexflint/go-arg"
	"github.com/pterm/pterm"
)

type (
	Args struct {
		SaveDir     string          `arg:"--save-dir,env:CRAFTO_SAVE_DIR" help:"save folder, defaults to the game's folder" placeholder:"DIR"`
		Debug       bool            `arg:"env:DEBUG" help:"print debug messages"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"open the terminal editor (default)"`
		List        *ListCmd        `arg:"subcommand:list" help:"list save files"`
		Get         *GetCmd         `arg:"subcommand:get" help:"print the progression points of a save file"`
		Set         *SetCmd         `arg:"subcommand:set" help:"change the progression points of a save file"`
		Scan        *ScanCmd        `arg:"subcommand:scan" help:"print the progression points of every save file"`
	}
	InteractiveCmd struct{}
	ListCmd        struct{}
	GetCmd         struct {
		File string `arg:"positional,required" help:"save file name or path" placeholder:"FILE"`
		JSON bool   `arg:"--json" help:"print JSON"`
	}
	SetCmd struct {
		File   string  `arg:"positional,required" help:"save file name or path" placeholder:"FILE"`
		Value  float64 `arg:"positional,required" help:"new progression points" placeholder:"VALUE"`
		Backup bool    `help:"copy the file to FILE.bak before writing"`
	}
	ScanCmd struct {
		JSON bool `arg:"--json" help:"print JSON"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Edit the progressionPoints of Craftomation101 save files.\n",
			"Save files are looked up in the game's save folder unless a path is given.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func resolveSaveDir(args Args) (string, error) {
	if args.SaveDir != "" {
		return args.SaveDir, nil
	}
	return savedir.DefaultDir()
}

func run(args Args) error {
	if args.Debug {
		pterm.EnableDebugMessages()
	}
	dir, err := resolveSaveDir(args)
	if err != nil {
		return err
	}
	pterm.Debug.Printfln("save folder: %s", dir)

	switch {
	case args.List != nil:
		return PrintList(dir)
	case args.Get != nil:
		return PrintField(savedir.Resolve(dir, args.Get.File), args.Get.JSON)
	case args.Set != nil:
		return SetField(savedir.Resolve(dir, args.Set.File), args.Set.Value, args.Set.Backup)
	case args.Scan != nil:
		return PrintScan(dir, args.Scan.JSON)
	default:
		return ui.Start(dir)
	}
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if err := run(args); err != nil {
		pterm.Error.Println(err.Error())
		pterm.Debug.Printfln("%+v", err)
		os.Exit(1)
	}
}
