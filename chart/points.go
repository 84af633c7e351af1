// seehuhn.de/go/chartwheel - astrological chart wheels
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chart

import "fmt"

// Point codes, following the numbering of the Swiss Ephemeris.
const (
	Sun       = 0
	Moon      = 1
	Mercury   = 2
	Venus     = 3
	Mars      = 4
	Jupiter   = 5
	Saturn    = 6
	Uranus    = 7
	Neptune   = 8
	Pluto     = 9
	MeanNode  = 10
	TrueNode  = 11
	Earth     = 14
	Chiron    = 15
	Pholus    = 16
	Ceres     = 17
	Pallas    = 18
	Juno      = 19
	Vesta     = 20
	Cupido    = 40
	Hades     = 41
	Zeus      = 42
	Kronos    = 43
	Apollon   = 44
	Admetos   = 45
	Vulkanus  = 46
	Poseidon  = 47
	AstOffset = 10000
	Eris      = AstOffset + 136199
)

// Colour codes which are not points.  They are accepted wherever a point
// code selects a drawing colour.
const (
	CodeLight  = -3
	CodeDark   = -2
	CodeStrong = -1
)

type pointInfo struct {
	name, symbol string
}

var points = map[int]pointInfo{
	Sun:              {"Sun", "☉"},
	Moon:             {"Moon", "☽"},
	Mercury:          {"Mercury", "☿"},
	Venus:            {"Venus", "♀"},
	Mars:             {"Mars", "♂"},
	Jupiter:          {"Jupiter", "♃"},
	Saturn:           {"Saturn", "♄"},
	Uranus:           {"Uranus", "♅"},
	Neptune:          {"Neptune", "♆"},
	Pluto:            {"Pluto", "♇"},
	Earth:            {"Earth", "⊕"},
	MeanNode:         {"Mean Node", "☊"},
	TrueNode:         {"True Node", "☊"},
	Ceres:            {"Ceres", "⚳"},
	AstOffset + 1:    {"Ceres", "⚳"},
	Pallas:           {"Pallas", "⚴"},
	AstOffset + 2:    {"Pallas", "⚴"},
	Juno:             {"Juno", "⚵"},
	AstOffset + 3:    {"Juno", "⚵"},
	Vesta:            {"Vesta", "⚶"},
	AstOffset + 4:    {"Vesta", "⚶"},
	Eris:             {"Eris", "⯰"},
	Chiron:           {"Chiron", "⚷"},
	AstOffset + 2060: {"Chiron", "⚷"},
	Pholus:           {"Pholus", "⯛"},
	AstOffset + 5145: {"Pholus", "⯛"},
	Cupido:           {"Cupido", "⯠"},
	Hades:            {"Hades", "⯡"},
	Zeus:             {"Zeus", "⯢"},
	Kronos:           {"Kronos", "⯣"},
	Apollon:          {"Apollon", "⯤"},
	Admetos:          {"Admetos", "⯥"},
	Vulkanus:         {"Vulkanus", "⯦"},
	Poseidon:         {"Poseidon", "⯧"},
}

// Symbol returns the glyph for a point code.  Unknown points are shown
// as a star.
func Symbol(code int) string {
	if p, ok := points[code]; ok {
		return p.symbol
	}
	return "★"
}

// PointName returns the English name for a point code.
func PointName(code int) string {
	if p, ok := points[code]; ok {
		return p.name
	}
	if code >= AstOffset {
		return fmt.Sprintf("Asteroid %d", code-AstOffset)
	}
	return fmt.Sprintf("Point %d", code)
}

// SignSymbols are the glyphs of the twelve signs, starting with Aries.
var SignSymbols = [12]string{
	"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓",
}

var signAbbr = [12]string{
	"Ar", "Ta", "Gm", "Cn", "Le", "Vi", "Lb", "Sc", "Sg", "Cp", "Aq", "Pi",
}

// Sign returns the index (0 = Aries) of the sign containing lon.
func Sign(lon float64) int {
	return int(lonDegrees(lon)) / 30
}
