// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package registry

import "github.com/wneessen/climate-comfort/internal/geo"

// defaultCities lists the major Chinese cities as (lon, lat) pairs.
var defaultCities = []City{
	{ID: "Beijing", Name: "北京", Coordinate: geo.New(116.41667, 39.91667)},
	{ID: "Shanghai", Name: "上海", Coordinate: geo.New(121.43333, 31.23040)},
	{ID: "Tianjin", Name: "天津", Coordinate: geo.New(117.20000, 39.13333)},
	{ID: "Hong Kong", Name: "香港", Coordinate: geo.New(114.10000, 22.20000)},
	{ID: "Guangzhou", Name: "广州", Coordinate: geo.New(113.23333, 23.16667)},
	{ID: "Zhuhai", Name: "珠海", Coordinate: geo.New(113.51667, 22.30000)},
	{ID: "Shenzhen", Name: "深圳", Coordinate: geo.New(114.06667, 22.61667)},
	{ID: "Hangzhou", Name: "杭州", Coordinate: geo.New(120.20000, 30.26667)},
	{ID: "Chongqing", Name: "重庆", Coordinate: geo.New(106.45000, 29.56667)},
	{ID: "Qingdao", Name: "青岛", Coordinate: geo.New(120.33333, 36.06667)},
	{ID: "Xiamen", Name: "厦门", Coordinate: geo.New(118.10000, 24.46667)},
	{ID: "Fuzhou", Name: "福州", Coordinate: geo.New(119.30000, 26.08333)},
	{ID: "Lanzhou", Name: "兰州", Coordinate: geo.New(103.73333, 36.03333)},
	{ID: "Guiyang", Name: "贵阳", Coordinate: geo.New(106.71667, 26.56667)},
	{ID: "Changsha", Name: "长沙", Coordinate: geo.New(113.00000, 28.21667)},
	// Nanjing is listed twice in the source data (118.78333 and 118.80000, 1.6 km apart).
	// The first pair is kept.
	{ID: "Nanjing", Name: "南京", Coordinate: geo.New(118.78333, 32.05000)},
	{ID: "Nanchang", Name: "南昌", Coordinate: geo.New(115.90000, 28.68333)},
	{ID: "Shenyang", Name: "沈阳", Coordinate: geo.New(123.38333, 41.80000)},
	{ID: "Taiyuan", Name: "太原", Coordinate: geo.New(112.53333, 37.86667)},
	{ID: "Chengdu", Name: "成都", Coordinate: geo.New(104.06667, 30.66667)},
	{ID: "Lhasa", Name: "拉萨", Coordinate: geo.New(91.00000, 29.60000)},
	{ID: "Urumqi", Name: "乌鲁木齐", Coordinate: geo.New(87.68333, 43.76667)},
	{ID: "Kunming", Name: "昆明", Coordinate: geo.New(102.73333, 25.05000)},
	{ID: "Xi'an", Name: "西安", Coordinate: geo.New(108.95000, 34.26667)},
	{ID: "Xining", Name: "西宁", Coordinate: geo.New(101.75000, 36.56667)},
	{ID: "Yinchuan", Name: "银川", Coordinate: geo.New(106.26667, 38.46667)},
	{ID: "Changchun", Name: "长春", Coordinate: geo.New(125.32357, 43.81684)},
	{ID: "Wuhan", Name: "武汉", Coordinate: geo.New(114.31667, 30.51667)},
	{ID: "Zhengzhou", Name: "郑州", Coordinate: geo.New(113.65000, 34.76667)},
	{ID: "Shijiazhuang", Name: "石家庄", Coordinate: geo.New(114.48333, 38.03333)},
	{ID: "Sanya", Name: "三亚", Coordinate: geo.New(109.50000, 18.20000)},
	{ID: "Haikou", Name: "海口", Coordinate: geo.New(110.35000, 20.01667)},
	{ID: "Macau", Name: "澳门", Coordinate: geo.New(113.50000, 22.20000)},
}

// Default returns a Registry populated with the built-in city table.
func Default() (*Registry, error) {
	return New(defaultCities...)
}
