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


package sdlplay

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface. The request is serviced in the
// main thread and the function blocks until it has been.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- fmt.Errorf("sdlplay: bad arguments for %v: %v", request.request, r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		err = scr.setScale(request.args[0].(float64))

	case gui.ReqSetTitle:
		scr.title = request.args[0].(string)
		scr.updateTitle()

	case gui.ReqState:
		scr.state = request.args[0].(govern.State)
		scr.updateTitle()

	case gui.ReqSavePrefs:
		err = scr.prefs.Save()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}

func (scr *SdlPlay) updateTitle() {
	t := windowTitle
	if scr.title != "" {
		t = fmt.Sprintf("%s - %s", t, scr.title)
	}
	if !scr.state.Active() && scr.state != govern.Initialising {
		t = fmt.Sprintf("%s (%s)", t, strings.ToLower(scr.state.String()))
	}
	scr.window.SetTitle(t)
}
