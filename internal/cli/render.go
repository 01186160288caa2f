package cli

import (
	"fmt"

	"xdao.co/hashid/hashid"
	"xdao.co/hashid/internal/config"
)

// Render prints id in the requested format. The upper flag applies to hex
// only; the other renderings have fixed canonical forms.
func Render(id hashid.ID, format string, upper bool) (string, error) {
	switch format {
	case config.FormatHex:
		if upper {
			return id.HexUpper(), nil
		}
		return id.Hex(), nil
	case config.FormatUUID:
		return id.UUID().String(), nil
	case config.FormatMultihash:
		mh, err := id.Multihash()
		if err != nil {
			return "", err
		}
		return mh.B58String(), nil
	case config.FormatCID:
		c, err := id.CID()
		if err != nil {
			return "", err
		}
		return c.String(), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected hex|uuid|multihash|cid)", format)
	}
}
