// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


package gui

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the type conversion will fail and the request will return an error.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// the channel that events are sent on. events are not sent until this
	// request has been made
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan gui.Event

	// whether the gui is visible or not
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// window scaling
	ReqSetScale FeatureReq = "ReqSetScale" // float64

	// the window title
	ReqSetTitle FeatureReq = "ReqSetTitle" // string

	// notify GUI of emulation state
	ReqState FeatureReq = "ReqState" // govern.State

	// save the GUI preferences to disk
	ReqSavePrefs FeatureReq = "ReqSavePrefs" // nil
)
