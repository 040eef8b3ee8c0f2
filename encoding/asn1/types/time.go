// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"fmt"
	"time"

	"github.com/notaryproject/notation-asn1-go/encoding/asn1"
)

// layouts of GeneralizedTime. Parsing accepts an optional fraction of a
// second after the seconds field.
const (
	generalizedTimeLayout    = "20060102150405Z0700"
	generalizedTimeDERLayout = "20060102150405.999999999"
)

// GeneralizedTime is an ASN.1 GeneralizedTime.
type GeneralizedTime struct {
	raw string
	t   time.Time
}

// NewGeneralizedTime returns the GeneralizedTime t in its DER form.
func NewGeneralizedTime(t time.Time) *GeneralizedTime {
	return &GeneralizedTime{raw: formatDERTime(t), t: t}
}

// ParseGeneralizedTime keeps s as the BER representation of the time. The
// DER form is derived from the parsed time.
func ParseGeneralizedTime(s string) (*GeneralizedTime, error) {
	t, err := time.Parse(generalizedTimeLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: GeneralizedTime %q: %v", ErrInvalidValue, s, err)
	}
	return &GeneralizedTime{raw: s, t: t}, nil
}

// formatDERTime formats t in UTC without trailing zeros in the fraction.
// Reference: ISO/IEC 8825-1: 11.7
func formatDERTime(t time.Time) string {
	return t.UTC().Format(generalizedTimeDERLayout) + "Z"
}

// Time returns the time of g.
func (g *GeneralizedTime) Time() time.Time { return g.t }

func (g *GeneralizedTime) ToPrimitive() asn1.Primitive { return g }

func (g *GeneralizedTime) Encode(e *asn1.Encoder, withTag bool) error {
	return e.WriteEncoded(withTag, asn1.ClassUniversal, asn1.TagGeneralizedTime, []byte(g.raw))
}

func (g *GeneralizedTime) EncodeConstructed() bool { return false }

func (g *GeneralizedTime) EncodedLength(withTag bool) int {
	return asn1.DLEncodingLength(withTag, len(g.raw))
}

func (g *GeneralizedTime) ToDER() asn1.Primitive {
	der := formatDERTime(g.t)
	if der == g.raw {
		return g
	}
	return &GeneralizedTime{raw: der, t: g.t}
}

func (g *GeneralizedTime) ToDL() asn1.Primitive { return g }
