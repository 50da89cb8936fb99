package domain

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	configKit "github.com/gookit/config/v2"
	"github.com/gookit/config/v2/yaml"
	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

const (
	OptionName = "name"
	OptionDesc = "description"
)

var (
	DefaultProxyReports = []string{"proxy-report-1.json", "proxy-report-2.json", "proxy-report-3.json"}

	// Environment variables that may stand in for options. Values are picked up from the process
	// environment and from an optional .env file.
	EnvOptions = map[string]string{
		"YCSB_REPORT_DIR":    "report-dir",
		"YCSB_PROXY_REPORTS": "proxy-reports",
		"YCSB_LOG_LEVEL":     "log-level",
	}
)

type ReportConfig struct {
	YAML                   string `name:"yaml" description:"Path to config file in the yml format."`
	ReportDir              string `name:"report-dir" description:"Directory holding the proxy JSON reports."`
	ProxyReports           string `name:"proxy-reports" description:"Comma-separated list of proxy JSON reports, relative to report-dir."`
	TolerateMissingReports bool   `name:"tolerate-missing-reports" description:"Skip proxy reports that are missing or unparsable instead of failing the run."`
	ClientMarker           string `name:"client-marker" description:"Columns whose name contains this substring hold per-client latency samples (ns)."`
	LabelColumn            string `name:"label-column" description:"Metadata column holding summary labels."`
	ValueColumn            string `name:"value-column" description:"Metadata column holding summary values. The default is the unnamed column."`
	RunDurationColumn      string `name:"run-duration-column" description:"Metadata column holding run durations. Inferred from the input when empty."`
	DistMarker             string `name:"dist-marker" description:"A summary label containing this substring ends summary collection for the rest of the run."`
	LogLevel               string `name:"log-level" description:"Log level: debug, info, warn or error."`

	args []string
}

// GetDefaultConfig returns the options the merge tool runs with when nothing is overridden.
func GetDefaultConfig() *ReportConfig {
	return &ReportConfig{
		ReportDir:    ".",
		ProxyReports: strings.Join(DefaultProxyReports, ","),
		ClientMarker: "client",
		LabelColumn:  "summary",
		ValueColumn:  "",
		DistMarker:   "dist",
		LogLevel:     "info",
	}
}

// CheckUsage registers every tagged option with the flag set, parses args, and then overlays values from
// the environment and the YAML file named by -yaml, if any. Flags given explicitly on the command line
// win over both. Positional arguments are kept for Args.
func (opts *ReportConfig) CheckUsage(fs *flag.FlagSet, args []string) error {
	var printInfo bool
	fs.BoolVar(&printInfo, "h", false, "help info?")

	oType := reflect.TypeOf(opts).Elem()
	oVal := reflect.ValueOf(opts).Elem()
	numField := oType.NumField()
	for i := 0; i < numField; i++ {
		field := oType.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name := field.Tag.Get(OptionName)
		if name == "" {
			continue
		}
		desc := field.Tag.Get(OptionDesc)
		opt := oVal.Field(i)
		switch field.Type.Kind() {
		case reflect.Bool:
			fs.BoolVar(opt.Addr().Interface().(*bool), name, opt.Bool(), desc)
		case reflect.Int:
			fs.IntVar(opt.Addr().Interface().(*int), name, int(opt.Int()), desc)
		case reflect.Int64:
			fs.Int64Var(opt.Addr().Interface().(*int64), name, opt.Int(), desc)
		case reflect.Float64:
			fs.Float64Var(opt.Addr().Interface().(*float64), name, opt.Float(), desc)
		case reflect.String:
			fs.StringVar(opt.Addr().Interface().(*string), name, opt.String(), desc)
		default:
			panic(fmt.Errorf("unsupprted config type: %v", field.Type.Kind()))
		}
	}

	if err := fs.Parse(args); err != nil {
		return Errorf(ErrUsage, "%v", err)
	}

	if printInfo {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] %s\n", fs.Name(), "<args>...")
		fmt.Fprintf(fs.Output(), "Available options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "Precedence: command line flags, then -yaml, then environment (%s), then defaults.\n", strings.Join(envNames(), ", "))
		return flag.ErrHelp
	}

	opts.args = fs.Args()

	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	if err := opts.overlay(); err != nil {
		return err
	}

	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return Errorf(ErrUsage, "-%s: %v", name, err)
		}
	}

	return nil
}

func envNames() []string {
	names := make([]string, 0, len(EnvOptions))
	for name := range EnvOptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (opts *ReportConfig) overlay() error {
	kit := configKit.NewWithOptions("ycsb-report", func(opt *configKit.Options) {
		opt.TagName = OptionName
		// DecoderConfig initialization is due a bug in configKit: no TagName will be applied if DecoderConfig is nil.
		opt.DecoderConfig = &mapstructure.DecoderConfig{}
	})
	kit.AddDriver(yaml.Driver)
	kit.LoadOSEnvs(EnvOptions)

	if opts.YAML != "" {
		if err := kit.LoadFiles(opts.YAML); err != nil {
			return Errorf(ErrMalformedInput, "failed to load config file \"%s\": %v", opts.YAML, err)
		}
	}

	if len(kit.Data()) == 0 {
		return nil
	}

	fileOpts := &ReportConfig{}
	if err := kit.BindStruct("", fileOpts); err != nil {
		return Errorf(ErrMalformedInput, "failed to bind config: %v", err)
	}

	if err := mergo.Merge(opts, fileOpts, mergo.WithOverride); err != nil {
		return err
	}

	return nil
}

// Args returns the positional arguments left over after option parsing.
func (opts *ReportConfig) Args() []string {
	return opts.args
}

// MergeArgs splits the positional arguments of the merge tool into the output path and the input paths.
func (opts *ReportConfig) MergeArgs() (string, []string, error) {
	if len(opts.args) < 2 {
		return "", nil, Errorf(ErrUsage, "expected <output_csv_path> <input_csv_path>..., got %d argument(s)", len(opts.args))
	}

	return opts.args[0], opts.args[1:], nil
}

// ProxyReportPaths resolves the configured proxy reports against ReportDir.
func (opts *ReportConfig) ProxyReportPaths() []string {
	paths := make([]string, 0, len(DefaultProxyReports))
	for _, name := range strings.Split(opts.ProxyReports, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if filepath.IsAbs(name) || opts.ReportDir == "" {
			paths = append(paths, name)
		} else {
			paths = append(paths, filepath.Join(opts.ReportDir, name))
		}
	}

	return paths
}

// LoadDotEnv loads a .env file from the working directory into the process environment, if there is one.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

// ParseCommandLine loads .env and parses the process arguments. It exits the process on -h or bad usage.
func ParseCommandLine() *ReportConfig {
	if err := LoadDotEnv(); err != nil {
		panic(err)
	}

	conf := GetDefaultConfig()
	if err := conf.CheckUsage(flag.CommandLine, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	return conf
}
