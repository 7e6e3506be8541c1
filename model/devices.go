package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

type DeviceOverview struct {
	Online  []Device `json:"online"`
	Offline []Device `json:"offline"`
}

type Device struct {
	MAC    string `json:"mac"`
	Online bool   `json:"online"`

	// online only, addresses is an empty list for online devices without one
	Name           *string        `json:"name,omitempty"`
	Connection     *Connection    `json:"connection,omitempty"`
	Addresses      []string       `json:"addresses"`
	Uptime         *MinuteCounter `json:"uptime,omitempty"`
	LeaseRemaining *MinuteCounter `json:"lease_remaining,omitempty"`
}

type Band string

const (
	Band2_4GHz Band = "2.4GHz"
	Band5GHz   Band = "5GHz"
)

type ConnectionKind int

const (
	ConnectionWifi ConnectionKind = iota
	ConnectionOther
)

// Connection is either a wifi band or a free text interface description.
type Connection struct {
	Kind        ConnectionKind
	Band        Band
	Description string
}

func Wifi(band Band) *Connection {
	return &Connection{Kind: ConnectionWifi, Band: band}
}

func Other(description string) *Connection {
	return &Connection{Kind: ConnectionOther, Description: description}
}

func (c Connection) IsWifi(band Band) bool {
	return c.Kind == ConnectionWifi && c.Band == band
}

func (c Connection) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ConnectionWifi:
		return json.Marshal(map[string]Band{"wifi": c.Band})
	case ConnectionOther:
		return json.Marshal(map[string]string{"other": c.Description})
	}
	return nil, fmt.Errorf("unknown connection kind %d", c.Kind)
}

func (c *Connection) UnmarshalJSON(data []byte) error {
	var tagged map[string]string
	err := json.Unmarshal(data, &tagged)
	if err != nil {
		return err
	}
	if len(tagged) != 1 {
		return errors.New("connection must carry exactly one tag")
	}
	for tag, value := range tagged {
		switch tag {
		case "wifi":
			band := Band(value)
			if band != Band2_4GHz && band != Band5GHz {
				return fmt.Errorf("unknown wifi band %q", value)
			}
			*c = Connection{Kind: ConnectionWifi, Band: band}
		case "other":
			*c = Connection{Kind: ConnectionOther, Description: value}
		default:
			return fmt.Errorf("unknown connection tag %q", tag)
		}
	}
	return nil
}
