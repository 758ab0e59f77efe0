// 指示: miu200521358
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/miu200521358/mu_vrmanim/pkg/adapter/io_config"
	"github.com/miu200521358/mu_vrmanim/pkg/adapter/io_rig"
	"github.com/miu200521358/mu_vrmanim/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmanim/pkg/shared/logging"
	"github.com/miu200521358/mu_vrmanim/pkg/usecase/minteractor"
	"go.uber.org/zap/zapcore"
)

// options はCLI引数を保持する。
type options struct {
	rigPath    string
	configPath string
	ticks      int
	poseEvery  int
	seed       uint64
	seedSet    bool
	verbose    bool
}

// main はリグ定義を読み込み、指定tick数だけアニメーションを進める。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。tickごとの結果をJSON Linesで out へ書き出す。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(zapcore.AddSync(errOut))
	if opts.verbose {
		logger.SetLevel(logging.LOG_LEVEL_DEBUG)
	}
	logging.SetDefaultLogger(logger)
	defer func() { _ = logger.Sync() }()

	uc := minteractor.NewRigAnimatorUsecase(minteractor.RigAnimatorUsecaseDeps{
		RigReader:    io_rig.NewRigRepository(),
		ConfigReader: io_config.NewConfigRepository(),
	})
	if opts.configPath != "" {
		if _, err := uc.LoadConfig(nil, opts.configPath); err != nil {
			return fmt.Errorf("設定読み込みに失敗しました: %w", err)
		}
	}
	if opts.seedSet {
		config, err := uc.Config().Clone()
		if err != nil {
			return err
		}
		config.Seed = opts.seed
		uc.SetConfig(config)
	}

	data, err := uc.LoadRig(nil, opts.rigPath)
	if err != nil {
		return fmt.Errorf("リグ読み込みに失敗しました: %w", err)
	}
	if err := uc.Attach(data.Registry); err != nil {
		return fmt.Errorf("リグ接続に失敗しました: %w", err)
	}
	defer uc.Detach()

	encoder := json.NewEncoder(out)
	for i := 0; i < opts.ticks; i++ {
		if opts.poseEvery > 0 && i%opts.poseEvery == 0 {
			uc.RequestNewPose()
		}
		if err := encoder.Encode(uc.Tick()); err != nil {
			return fmt.Errorf("tick結果の書き出しに失敗しました: %w", err)
		}
	}
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_vrmanim", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "%s: %s\n", messages.HelpUsageTitle, messages.HelpUsage)
		fs.PrintDefaults()
	}

	rigPath := fs.String("rig", "", "リグ定義ファイルパス (.yaml/.yml/.json)")
	configPath := fs.String("config", "", "アニメーション設定ファイルパス (.yaml/.yml)")
	ticks := fs.Int("ticks", 600, "実行するtick数")
	poseEvery := fs.Int("pose-every", 120, "新しい姿勢を要求する間隔(tick)。0 で要求しない")
	seed := fs.Uint64("seed", 0, "姿勢サンプリングの乱数シード")
	verbose := fs.Bool("v", false, "デバッグログを出力する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *rigPath == "" && fs.NArg() > 0 {
		*rigPath = fs.Arg(0)
	}
	if *rigPath == "" {
		return options{}, fmt.Errorf("リグ定義ファイルを指定してください (-rig)")
	}
	if *ticks < 0 {
		return options{}, fmt.Errorf("tick数は 0 以上で指定してください: %d", *ticks)
	}
	if *poseEvery < 0 {
		return options{}, fmt.Errorf("姿勢要求間隔は 0 以上で指定してください: %d", *poseEvery)
	}

	opts := options{
		rigPath:    *rigPath,
		configPath: *configPath,
		ticks:      *ticks,
		poseEvery:  *poseEvery,
		seed:       *seed,
		verbose:    *verbose,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	return opts, nil
}
