// Command cqlgo is an interactive CQL client for Cassandra and Scylla
// clusters.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cqlgo/config"
	"cqlgo/core/format"
	"cqlgo/drivers"
	"cqlgo/repl"
)

type cmdRoot struct {
	FlagHosts          []string
	FlagPort           int
	FlagUsername       string
	FlagPassword       string
	FlagPasswordPrompt bool
	FlagKeyspace       string
	FlagExecute        string
	FlagFile           string
	FlagOutputFormat   string
	FlagVerbose        bool
	FlagSSL            bool
	FlagSSLCACert      string
	FlagSSLVerify      bool
	FlagConfig         string
}

func main() {
	root := cmdRoot{}

	app := &cobra.Command{
		Use:               "cqlgo",
		Short:             "Interactive CQL client for Cassandra and Scylla",
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:              root.Run,
	}

	app.PersistentFlags().StringSliceVarP(&root.FlagHosts, "hosts", "H", []string{"127.0.0.1"}, "Contact points")
	app.PersistentFlags().IntVarP(&root.FlagPort, "port", "p", 9042, "Native protocol port")
	app.PersistentFlags().StringVarP(&root.FlagUsername, "username", "u", "", "Username for authentication")
	app.PersistentFlags().StringVar(&root.FlagPassword, "password", "", "Password for authentication")
	app.PersistentFlags().BoolVarP(&root.FlagPasswordPrompt, "password-prompt", "P", false, "Prompt for the password")
	app.PersistentFlags().StringVarP(&root.FlagKeyspace, "keyspace", "k", "", "Keyspace to use")
	app.PersistentFlags().StringVarP(&root.FlagOutputFormat, "output-format", "o", "table", "Output format (table, json, csv)")
	app.PersistentFlags().BoolVarP(&root.FlagVerbose, "verbose", "v", false, "Show debug messages")
	app.PersistentFlags().BoolVar(&root.FlagSSL, "ssl", false, "Connect over TLS")
	app.PersistentFlags().StringVar(&root.FlagSSLCACert, "ssl-ca-cert", "", "Path to the CA certificate")
	app.PersistentFlags().BoolVar(&root.FlagSSLVerify, "ssl-verify", false, "Verify the server certificate")
	app.PersistentFlags().StringVar(&root.FlagConfig, "config", "", "Path to the config file")

	app.Flags().StringVarP(&root.FlagExecute, "execute", "e", "", "Execute one statement and exit")
	app.Flags().StringVarP(&root.FlagFile, "file", "f", "", "Execute statements from a file and exit")

	describe := cmdDescribe{root: &root}
	app.AddCommand(describe.Command())

	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}

func (c *cmdRoot) logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.FlagVerbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// settings merges the config file with any flags the user set
// explicitly. Flags win.
func (c *cmdRoot) settings(cmd *cobra.Command) (*config.Config, error) {
	path := c.FlagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("hosts") {
		cfg.Hosts = c.FlagHosts
	}
	if flags.Changed("port") {
		cfg.Port = c.FlagPort
	}
	if flags.Changed("username") {
		cfg.Username = c.FlagUsername
	}
	if flags.Changed("keyspace") {
		cfg.Keyspace = c.FlagKeyspace
	}
	if flags.Changed("output-format") {
		cfg.OutputFormat = c.FlagOutputFormat
	}
	if flags.Changed("ssl") {
		cfg.SSL.Enabled = c.FlagSSL
	}
	if flags.Changed("ssl-ca-cert") {
		cfg.SSL.CACert = c.FlagSSLCACert
	}
	if flags.Changed("ssl-verify") {
		cfg.SSL.Verify = c.FlagSSLVerify
	}
	return cfg, nil
}

func (c *cmdRoot) connect(cmd *cobra.Command, log *logrus.Logger) (drivers.Driver, *config.Config, error) {
	cfg, err := c.settings(cmd)
	if err != nil {
		return nil, nil, err
	}

	password := c.FlagPassword
	if c.FlagPasswordPrompt {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, nil, fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	}

	driver, err := drivers.Connect("cassandra", drivers.Config{
		Hosts:     cfg.Hosts,
		Port:      cfg.Port,
		Username:  cfg.Username,
		Password:  password,
		Keyspace:  cfg.Keyspace,
		SSL:       cfg.SSL.Enabled,
		SSLCACert: cfg.SSL.CACert,
		SSLVerify: cfg.SSL.Verify,
	}, log)
	if err != nil {
		return nil, nil, err
	}
	return driver, cfg, nil
}

func (c *cmdRoot) Run(cmd *cobra.Command, args []string) error {
	log := c.logger()

	driver, cfg, err := c.connect(cmd, log)
	if err != nil {
		return err
	}
	defer driver.Close()

	kind, ok := format.ParseKind(cfg.OutputFormat)
	if !ok {
		log.WithField("format", cfg.OutputFormat).Warn("unknown output format, using table")
	}

	if c.FlagExecute != "" {
		return runScript(driver, c.FlagExecute, kind)
	}
	if c.FlagFile != "" {
		data, err := os.ReadFile(c.FlagFile)
		if err != nil {
			return fmt.Errorf("read script %q: %w", c.FlagFile, err)
		}
		return runScript(driver, string(data), kind)
	}

	history := repl.NewHistory(cfg.HistoryFile)
	session := repl.NewSession(driver,
		repl.WithLogger(log),
		repl.WithFormat(kind),
		repl.WithHistory(history),
	)
	session.Run()

	return nil
}

// runScript executes ";"-separated statements in order and stops on the
// first failure.
func runScript(driver drivers.Driver, script string, kind format.Kind) error {
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		res, err := driver.Execute(context.Background(), stmt+";")
		if err != nil {
			return err
		}
		text, err := format.Format(res, kind, format.TerminalWidth())
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	return nil
}

type cmdDescribe struct {
	root *cmdRoot
}

func (c *cmdDescribe) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <cluster|keyspaces|keyspace NAME|table NAME|tables KEYSPACE>",
		Short: "Run a describe shortcut and exit",
		RunE:  c.Run,
	}

	return cmd
}

func (c *cmdDescribe) Run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	log := c.root.logger()

	driver, cfg, err := c.root.connect(cmd, log)
	if err != nil {
		return err
	}
	defer driver.Close()

	kind, _ := format.ParseKind(cfg.OutputFormat)

	stmt := repl.DescribeStatement("describe " + strings.Join(args, " "))
	res, err := driver.Execute(context.Background(), stmt)
	if err != nil {
		return err
	}
	text, err := format.Format(res, kind, format.TerminalWidth())
	if err != nil {
		return err
	}
	fmt.Println(text)

	return nil
}
