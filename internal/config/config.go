package config

import (
	"fmt"

	"github.com/liforra/ipintel/internal/ipapi"
	"github.com/liforra/ipintel/internal/notify"
	"github.com/liforra/ipintel/internal/ratelimit"
	"github.com/liforra/ipintel/internal/rdns"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client    Client
	IPAPI     ipapi.Settings
	RateLimit ratelimit.Settings
	RDNS      rdns.Settings
	Server    Server
	Health    Health
	Paths     Paths
	Persist   Persist
	Backup    Backup
	Logger    Logger
	Notify    notify.Settings
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.IPAPI.SetDefaults()
	c.RateLimit.SetDefaults()
	c.RDNS.SetDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Paths.setDefaults()
	c.Persist.setDefaults()
	c.Backup.setDefaults()
	c.Logger.setDefaults()
	c.Notify.SetDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":      &c.Client,
		"ip api":      &c.IPAPI,
		"rate limit":  &c.RateLimit,
		"reverse dns": &c.RDNS,
		"server":      &c.Server,
		"health":      &c.Health,
		"paths":       &c.Paths,
		"persist":     &c.Persist,
		"backup":      &c.Backup,
		"logger":      &c.Logger,
		"notify":      &c.Notify,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.IPAPI.ToLinesNode())
	node.AppendNode(c.RateLimit.ToLinesNode())
	node.AppendNode(c.RDNS.ToLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Persist.toLinesNode())
	node.AppendNode(c.Backup.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Notify.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.readIPAPI(reader)

	err = c.readRateLimit(reader)
	if err != nil {
		return fmt.Errorf("reading rate limit settings: %w", err)
	}

	err = c.readRDNS(reader)
	if err != nil {
		return fmt.Errorf("reading reverse DNS settings: %w", err)
	}

	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)
	c.Paths.read(reader)

	err = c.Persist.read(reader)
	if err != nil {
		return fmt.Errorf("reading persist settings: %w", err)
	}

	err = c.Backup.read(reader)
	if err != nil {
		return fmt.Errorf("reading backup settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.readNotify(reader)

	return nil
}
