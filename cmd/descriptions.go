package cmd

const rootLongDescription = `Bowlscore scores ten-pin bowling games.

A game is ten frames. A strike scores 10 plus the next two rolls, a spare
scores 10 plus the next roll, and the tenth frame grants a bonus roll after
a strike or a spare. Rolls breaking these rules are rejected.`

const rollLongDescription = `Score a game from marks rolled one after the other.

Each mark is a pin count (0-10) or a scorecard symbol:
  X   strike
  /   spare, the pins left standing in the frame
  -   gutter ball

Examples:
  bowlscore roll 3 6 X 5 - 1 /
  bowlscore roll --table X X X X X X X X X X X X`

const scoreLongDescription = `Score bowling sheets stored as YAML files.

A sheet lists the pins knocked down by each roll, frame by frame:
  title: Demo game
  frames:
    - [3, 6]
    - [10]
    - [1, 9, 3]

Supports Go-style path patterns:
  - ./...           recursively scan current directory
  - ./league/...    recursively scan league directory
  - a.yaml b.yaml   score several sheets`

const playLongDescription = `Enter a game roll by roll.

Rejected rolls are reported and the same roll is asked for again. Marks
given as arguments are recorded before the first prompt. Enter q to stop.`
