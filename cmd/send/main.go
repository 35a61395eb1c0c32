package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/Behyna/sms-services/messagecloud/internal/config"
	"github.com/Behyna/sms-services/messagecloud/internal/logging"
	"github.com/Behyna/sms-services/messagecloud/pkg/messagecloud"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	exitOK = iota
	exitRejected
	exitInvalid
	exitTransport
)

type flags struct {
	msisdn     string
	body       string
	senderID   string
	network    string
	value      string
	currency   string
	id         string
	category   string
	udh        string
	encoding   string
	configPath string
	reply      int
	binary     bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("send", pflag.ContinueOnError)

	var f flags
	fs.StringVar(&f.msisdn, "msisdn", "", "destination number in international format")
	fs.StringVar(&f.body, "body", "", "message text")
	fs.StringVar(&f.senderID, "sender-id", "", "sender id shown on the handset")
	fs.StringVar(&f.network, "network", "", "network name for billed messages")
	fs.StringVar(&f.value, "value", "", "message value")
	fs.StringVar(&f.currency, "currency", "", "three letter currency code")
	fs.IntVar(&f.reply, "reply", 0, "reply flag (0 or 1)")
	fs.StringVar(&f.id, "id", "", "message id, generated when empty")
	fs.StringVar(&f.category, "category", "", "three digit SMS category")
	fs.StringVar(&f.udh, "udh", "", "user data header for binary messages")
	fs.BoolVar(&f.binary, "binary", false, "send as a binary message")
	fs.StringVar(&f.encoding, "encoding", "", "message encoding")
	fs.StringVar(&f.configPath, "config", "", "path to a config file")
	fs.String("base-url", messagecloud.DefaultBaseURL, "gateway base URL")
	fs.Duration("timeout", messagecloud.DefaultTimeout, "gateway request timeout")
	fs.String("log-level", "warn", "log level")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitInvalid
	}

	v := viper.New()
	_ = v.BindPFlag("gateway.base_url", fs.Lookup("base-url"))
	_ = v.BindPFlag("gateway.timeout", fs.Lookup("timeout"))
	_ = v.BindPFlag("log.level", fs.Lookup("log-level"))
	if f.configPath != "" {
		v.SetConfigFile(f.configPath)
	}

	cfg, err := config.LoadWith(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return exitInvalid
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return exitInvalid
	}
	defer logger.Sync()

	msg, err := messagecloud.NewSMSMessage(cfg.Credentials.AccountID, cfg.Credentials.AccountSecret,
		messagecloud.WithLogger(logger),
		messagecloud.WithConfig(cfg.Gateway),
	).With(f.fields(fs)...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid message:", err)
		return exitInvalid
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := msg.Send(ctx)
	if err != nil {
		logger.Debug("Send failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "send failed:", err)
		if errors.Is(err, messagecloud.ErrValidation) {
			return exitInvalid
		}
		return exitTransport
	}

	fmt.Printf("callback_id=%s status=%d\n", result.CallbackID(), result.StatusCode())
	if !result.Succeeded() {
		fmt.Printf("error_code=%s error=%q\n", result.ErrorCode(), result.ErrorMessage())
		return exitRejected
	}

	fmt.Println("sent")
	return exitOK
}

// fields only sets what was given on the command line.
func (f flags) fields(fs *pflag.FlagSet) []messagecloud.Field {
	set := func(name string) bool { return fs.Changed(name) }

	var out []messagecloud.Field
	if set("msisdn") {
		out = append(out, messagecloud.SetMSISDN(f.msisdn))
	}
	if set("sender-id") {
		out = append(out, messagecloud.SetSenderID(f.senderID))
	}
	if set("body") {
		out = append(out, messagecloud.SetBody(f.body))
	}
	if set("network") {
		out = append(out, messagecloud.SetNetwork(f.network))
	}
	if set("value") {
		out = append(out, messagecloud.SetValueString(f.value))
	}
	if set("currency") {
		out = append(out, messagecloud.SetCurrency(f.currency))
	}
	if set("reply") {
		out = append(out, messagecloud.SetReply(f.reply))
	}
	if set("id") {
		out = append(out, messagecloud.SetID(f.id))
	}
	if set("category") {
		out = append(out, messagecloud.SetCategory(f.category))
	}
	if set("udh") {
		out = append(out, messagecloud.SetUDH(f.udh))
	}
	if set("binary") {
		out = append(out, messagecloud.SetBinary(f.binary))
	}
	if set("encoding") {
		out = append(out, messagecloud.SetEncoding(f.encoding))
	}
	return out
}
