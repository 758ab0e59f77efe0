// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_vrmanim/pkg/adapter/io_config"
	"github.com/miu200521358/mu_vrmanim/pkg/adapter/io_rig"
	"github.com/miu200521358/mu_vrmanim/pkg/usecase/minteractor"
)

// batchConfig はバッチ実行の設定を表す。
type batchConfig struct {
	FixtureRoot string
	ConfigPath  string
	Ticks       int
	PoseEvery   int
	DryRun      bool
	FailFast    bool
}

// soakEntry は1リグ分の入力情報を表す。
type soakEntry struct {
	Index   int
	RigPath string
	RigName string
}

// soakResult は1リグ分の実行結果を表す。
type soakResult struct {
	Entry    soakEntry
	Status   string
	Duration time.Duration
	Err      error
	Summary  string
}

// tickCollector はtick結果を集計する。
type tickCollector struct {
	ticks        int
	retargets    int
	falls        int
	pushes       int
	skippedEdges int
	maxMirrors   int
	minRootY     float64
	maxRootY     float64
}

// main はリグ定義を一括で読み込み、長時間tickを回して破綻がないか確認する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	entries, err := buildSoakEntries(config.FixtureRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "リグ定義の列挙に失敗しました: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "対象リグ定義がありません")
		return 2
	}

	results := executeBatchSoak(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultFixtureRoot, err := resolveDefaultFixtureRoot()
	if err != nil {
		return batchConfig{}, err
	}
	fixtureRoot := flag.String("fixture-root", defaultFixtureRoot, "リグ定義を探索するディレクトリ")
	configPath := flag.String("config", "", "アニメーション設定ファイルパス")
	ticks := flag.Int("ticks", 3600, "1リグあたりのtick数")
	poseEvery := flag.Int("pose-every", 90, "新しい姿勢を要求する間隔(tick)")
	dryRun := flag.Bool("dry-run", false, "実行せず、対象一覧のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedFixtureRoot := strings.TrimSpace(*fixtureRoot)
	if trimmedFixtureRoot == "" {
		return batchConfig{}, errors.New("fixture-root が空です")
	}
	if *ticks <= 0 {
		return batchConfig{}, fmt.Errorf("ticks は正の値で指定してください: %d", *ticks)
	}
	return batchConfig{
		FixtureRoot: filepath.Clean(trimmedFixtureRoot),
		ConfigPath:  strings.TrimSpace(*configPath),
		Ticks:       *ticks,
		PoseEvery:   *poseEvery,
		DryRun:      *dryRun,
		FailFast:    *failFast,
	}, nil
}

// resolveDefaultFixtureRoot はスクリプト配置ディレクトリ基準の既定探索先を返す。
func resolveDefaultFixtureRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	currentDir := filepath.Dir(currentFilePath)
	return filepath.Join(currentDir, "..", "..", "pkg", "adapter", "io_rig", "testdata"), nil
}

// buildSoakEntries はディレクトリ配下のリグ定義から実行エントリを生成する。
func buildSoakEntries(root string) ([]soakEntry, error) {
	repository := io_rig.NewRigRepository()
	paths := []string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !repository.CanLoad(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	entries := make([]soakEntry, 0, len(paths))
	for i, path := range paths {
		entries = append(entries, soakEntry{
			Index:   i + 1,
			RigPath: path,
			RigName: resolveRigName(path),
		})
	}
	return entries, nil
}

// executeBatchSoak は全リグを順次実行する。
func executeBatchSoak(config batchConfig, entries []soakEntry) []soakResult {
	results := make([]soakResult, 0, len(entries))
	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 実行開始: rig=%s\n", entry.Index, total, entry.RigName)
		result := soakRigEntry(config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 実行成功: rig=%s elapsed=%s\n", entry.Index, total, entry.RigName, result.Duration.Round(time.Millisecond))
			fmt.Printf("[%d/%d] 集計: %s\n", entry.Index, total, result.Summary)
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: rig=%s path=%s\n", entry.Index, total, entry.RigName, entry.RigPath)
		default:
			fmt.Printf("[%d/%d] 実行失敗: rig=%s reason=%v\n", entry.Index, total, entry.RigName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// soakRigEntry は1リグ分の読み込み・接続・tick実行を行う。
func soakRigEntry(config batchConfig, entry soakEntry) soakResult {
	result := soakResult{Entry: entry, Status: "failed"}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}

	usecase := minteractor.NewRigAnimatorUsecase(minteractor.RigAnimatorUsecaseDeps{
		RigReader:    io_rig.NewRigRepository(),
		ConfigReader: io_config.NewConfigRepository(),
	})
	if config.ConfigPath != "" {
		if _, err := usecase.LoadConfig(nil, config.ConfigPath); err != nil {
			result.Err = fmt.Errorf("LoadConfigに失敗しました: %w", err)
			return result
		}
	}

	startedAt := time.Now()
	data, err := usecase.LoadRig(nil, entry.RigPath)
	if err != nil {
		result.Err = fmt.Errorf("LoadRigに失敗しました: %w", err)
		return result
	}
	if err := usecase.Attach(data.Registry); err != nil {
		result.Err = fmt.Errorf("Attachに失敗しました: %w", err)
		return result
	}
	defer usecase.Detach()

	collector := newTickCollector()
	for i := 0; i < config.Ticks; i++ {
		if config.PoseEvery > 0 && i%config.PoseEvery == 0 {
			usecase.RequestNewPose()
		}
		collector.Collect(usecase.Tick())
	}
	if err := collector.Validate(); err != nil {
		result.Err = err
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.Summary = collector.Summary()
	return result
}

// printBatchSummary は実行結果の集計を標準出力へ表示する。
func printBatchSummary(results []soakResult) {
	succeeded := 0
	failed := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Printf(
		"バッチ実行サマリ: total=%d succeeded=%d failed=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		dryRun,
	)
}

// resolveRigName は入力パスから拡張子を除いたリグ名を返す。
func resolveRigName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		return "rig"
	}
	return name
}

// newTickCollector はtick集計器を生成する。
func newTickCollector() *tickCollector {
	return &tickCollector{minRootY: math.Inf(1), maxRootY: math.Inf(-1)}
}

// Collect はtick結果を集計する。
func (collector *tickCollector) Collect(report minteractor.TickReport) {
	collector.ticks++
	collector.retargets += len(report.Retargeted)
	if report.Fell {
		collector.falls++
	}
	if report.GroundPush > 0 {
		collector.pushes++
	}
	collector.skippedEdges += len(report.SkippedEdges)
	if report.MirrorCount > collector.maxMirrors {
		collector.maxMirrors = report.MirrorCount
	}
	collector.minRootY = math.Min(collector.minRootY, report.RootPosition.Y)
	collector.maxRootY = math.Max(collector.maxRootY, report.RootPosition.Y)
}

// Validate は集計値が破綻していないか判定する。
func (collector *tickCollector) Validate() error {
	if collector.ticks == 0 {
		return errors.New("tickが実行されていません")
	}
	if math.IsNaN(collector.minRootY) || math.IsNaN(collector.maxRootY) ||
		math.IsInf(collector.minRootY, 0) || math.IsInf(collector.maxRootY, 0) {
		return fmt.Errorf("ルート高さが不正です: [%v, %v]", collector.minRootY, collector.maxRootY)
	}
	return nil
}

// Summary は集計結果の要約文字列を返す。
func (collector *tickCollector) Summary() string {
	return fmt.Sprintf(
		"ticks=%d retargets=%d falls=%d pushes=%d skippedEdges=%d mirrors=%d rootY=[%.4f, %.4f]",
		collector.ticks,
		collector.retargets,
		collector.falls,
		collector.pushes,
		collector.skippedEdges,
		collector.maxMirrors,
		collector.minRootY,
		collector.maxRootY,
	)
}
