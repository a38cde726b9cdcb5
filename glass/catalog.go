package glass

// catalog holds the Sellmeier fits for the glasses the library knows about.
// Fiber glasses follow Fleming (1978); fluoride glasses, crystalline
// windows and the Schott entries follow their published catalogs.
var catalog = []Glass{
	{Name: "SiO2",
		C: [3]float64{4.67914826e-3, 1.35120631e-2, 9.79340025e1},
		B: [3]float64{6.96166300e-1, 4.07942600e-1, 8.97479400e-1}},
	{Name: "GeO2",
		C: [3]float64{4.75722038e-3, 2.37055446e-2, 1.40231330e2},
		B: [3]float64{8.06866420e-1, 7.18158480e-1, 8.54168310e-1}},
	{Name: "9.1% P2O2",
		C: [3]float64{3.79061862e-3, 1.43810462e-2, 7.49374334e1},
		B: [3]float64{6.95790000e-1, 4.52497000e-1, 7.12513000e-1}},
	{Name: "13.3% B2O3",
		C: [3]float64{3.83161000e-3, 1.52922902e-2, 8.27910731e1},
		B: [3]float64{6.90618000e-1, 4.01996000e-1, 8.98817000e-1}},
	{Name: "1.0% F",
		C: [3]float64{4.65492353e-3, 1.35629316e-2, 9.98741796e1},
		B: [3]float64{6.91116000e-1, 3.99166000e-1, 8.90423000e-1}},
	{Name: "16.9% Na2O : 32.5% B2O3",
		C: [3]float64{8.90362088e-3, 8.72094500e-3, 3.59958241e1},
		B: [3]float64{7.96468000e-1, 4.97614000e-1, 3.58924000e-1}},
	{Name: "ABCY",
		C: [3]float64{4.54079433e-2, -1.35241091e-5, 3.09549568e2},
		B: [3]float64{1.30355147e-1, 9.13764925e-1, 1.14207828}},
	{Name: "HBL",
		C: [3]float64{-1.55905386e-4, 7.32455962e-3, 5.96822762e2},
		B: [3]float64{2.03974072e-5, 1.25885153, 2.11857374}},
	{Name: "ZBG",
		C: [3]float64{3.31382978e-4, 9.53013988e-3, 3.85595295e2},
		B: [3]float64{3.50883275e-1, 9.36323861e-1, 1.45963548}},
	{Name: "ZBLA",
		C: [3]float64{1.49169281e-8, 8.95628044e-3, 2.39968296e2},
		B: [3]float64{3.28391032e-2, 1.25579928, 8.97176663e-1}},
	{Name: "ZBLAN",
		C: [3]float64{-2.40488039e-2, 1.73740457e-2, 4.02611805e2},
		B: [3]float64{3.05900633e-1, 9.18318740e-1, 1.50695421}},
	{Name: "5.2% B2O3",
		C: [3]float64{4.981838e-3, 1.375664e-2, 9.793353e1},
		B: [3]float64{6.910021e-1, 4.022430e-1, 9.439644e-1}},
	{Name: "10.5% P2O2",
		C: [3]float64{5.202431e-3, 1.287730e-2, 9.793401e1},
		B: [3]float64{7.058489e-1, 4.176021e-1, 8.952753e-1}},
	{Name: "N-BK7",
		C: [3]float64{6.00069867e-3, 2.00179144e-2, 1.03560653e2},
		B: [3]float64{1.03961212, 2.31792344e-1, 1.01046945}},
	{Name: "fused silica",
		C: [3]float64{4.67914826e-3, 1.35120631e-2, 9.79340025e1},
		B: [3]float64{6.96166300e-1, 4.07942600e-1, 8.97479400e-1}},
	{Name: "sapphire (ordinary)",
		C: [3]float64{5.2799261e-3, 1.42382647e-2, 3.25017834e2},
		B: [3]float64{1.43134930, 6.5054713e-1, 5.3414021}},
	{Name: "sapphire (extraordinary)",
		C: [3]float64{5.48041129e-3, 1.47994281e-2, 4.0289514e2},
		B: [3]float64{1.5039759, 5.5069141e-1, 6.5927379}},
	{Name: "MgF2 (ordinary)",
		C: [3]float64{1.88217800e-3, 8.95188847e-3, 5.66135591e2},
		B: [3]float64{4.87551080e-1, 3.98750310e-1, 2.31203530}},
	{Name: "MgF2 (extraordinary)",
		C: [3]float64{1.35737865e-3, 8.23767167e-3, 5.65107755e2},
		B: [3]float64{4.13440230e-1, 5.04974990e-1, 2.49048620}},
	{Name: "CaF2",
		C: [3]float64{2.52642999e-3, 1.00783328e-2, 1.20055597e3},
		B: [3]float64{5.67588800e-1, 4.71091400e-1, 3.84847230}},
	{Name: "F2",
		C: [3]float64{9.97743871e-3, 4.70450767e-2, 1.11886764e2},
		B: [3]float64{1.34533359, 2.09073176e-1, 9.37357162e-1}},
	{Name: "F5",
		C: [3]float64{9.58633048e-3, 4.57627627e-2, 1.15011883e2},
		B: [3]float64{1.31044630, 1.96034260e-1, 9.66129770e-1}},
}
