// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/werr"
)

var genCompletionCommand = &cli.Command{
	Name:  "gen-completion",
	Usage: "print a shell completion script (spec §6 CLI table)",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "shell", Aliases: []string{"s"}, Value: "bash", Usage: "bash, zsh or fish"},
	},
	Action: func(c *cli.Context) error {
		switch c.String("shell") {
		case "bash":
			fmt.Println(bashCompletion)
		case "zsh":
			fmt.Println(zshCompletion)
		case "fish":
			fmt.Println(fishCompletion)
		default:
			return werr.New(werr.KindUnimplementedFormat, "shell %q", c.String("shell"))
		}
		return nil
	},
}

const bashCompletion = `#! /bin/bash

_wgatools_complete() {
  local cur opts
  COMPREPLY=()
  cur="${COMP_WORDS[COMP_CWORD]}"
  opts=$(wgatools ${COMP_WORDS[@]:1:COMP_CWORD-1} --generate-bash-completion)
  COMPREPLY=($(compgen -W "${opts}" -- "${cur}"))
  return 0
}

complete -F _wgatools_complete wgatools
`

const zshCompletion = `#compdef wgatools

_wgatools() {
  local -a opts
  opts=("${(@f)$(wgatools ${words[@]:1} --generate-bash-completion)}")
  _describe 'commands' opts
}

_wgatools
`

const fishCompletion = `function __fish_wgatools_complete
  set -lx COMP_CWORD (math (count (commandline -opc)) - 1)
  wgatools (commandline -opc) --generate-bash-completion
end

complete -c wgatools -f -a '(__fish_wgatools_complete)'
`
