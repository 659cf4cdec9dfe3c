package constants

// TicksPerSecond is the game loop rate. Animation curves are sampled at the
// same rate so each tick advances them by one value.
const TicksPerSecond = 60

// AppName names the window and the config directory.
const AppName = "wheelpicker"
