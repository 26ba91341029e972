// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// Draw renders the diagram
//  dirout -- directory to save figure. "" means no save
//  fnkey  -- filename key. "" means use "vle-diagram"
//  show   -- show figure instead of saving
func Draw(o *Diagram, dirout, fnkey string, show bool) {
	plt.Reset(false, nil)
	for _, d := range o.Data {
		plt.Plot(d.X, d.Y, d.Style)
	}
	if o.Title != "" {
		plt.Title(o.Title, nil)
	}
	plt.Gll(o.Xlbl, o.Ylbl, nil)
	if o.Xrange != nil {
		plt.AxisXrange(o.Xrange[0], o.Xrange[1])
	}
	if show {
		plt.Show()
		return
	}
	if fnkey == "" {
		fnkey = "vle-diagram"
	}
	if dirout == "" {
		dirout = "/tmp/vle"
	}
	plt.Save(dirout, fnkey)
}
