// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const shellOps = `
Each line is **[tree] <op> [keys...]**. The tree is one of *bst*, *avl* or *rbt*; without it the current tree is used.

* **insert k...** / **delete k...** add or remove integer keys
* **contains k...** report membership (alias *contain*)
* **height**, **count** (leaves), **length** (alias *len*)
* **min**, **max**, **empty**
* **print** (in-order), **preorder**, **postorder**
* **verify** check the tree invariants
* **clear** drop every key, **copy** put the keys on the clipboard
* **use <tree>** switch the current tree, **trees** list live trees
* **help**, **exit** (alias *quit*)
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Trees %s**

Ordered key sets backed by three binary search trees: a plain BST, an AVL Tree and a Red-Black Tree.
Try them side by side from a shell or benchmark them against each other.

Built with Go %s

# 1. Commands
* **trees shell** interactive shell (default)
* **trees bench** build and query each tree over growing sizes
* **trees settings** show the configuration in ~/.trees.yaml
* **trees usage** this guide

# 2. Shell
%s
# 3. Benchmark
* Keys are 0..n-1 in ascending order, or distinct random keys with *--random*
* Each run inserts n keys and looks up the first n/10 of them
* *--csv out.csv* writes variant,size,mean_ns,height for plotting
* *--chart* opens a bar chart of the results, press q to leave

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), shellOps)
	result := markdown.Render(message, 80, 3)
	return string(result)
}

func getShellHelp() string {
	return string(markdown.Render("# Shell\n"+shellOps, 80, 3))
}
